package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachCars(t *testing.T) {
	employees := []Employee{
		{ID: 1, CatID: 1},              // cleaning: never gets a car
		{ID: 2, CatID: CategoryMoving}, // moving with a matching car
		{ID: 3, CatID: CategoryMoving}, // moving without a car record
	}
	cars := []Car{
		{ID: 10, EmpID: 2, Brand: "Hyundai", LicensePlate: "ກຂ 1234"},
		{ID: 11, EmpID: 99, Brand: "Toyota"}, // orphan record
	}

	merged := AttachCars(employees, cars)

	assert.Nil(t, merged[0].Car, "non-moving provider must not carry a car")
	require.NotNil(t, merged[1].Car)
	assert.Equal(t, "Hyundai", merged[1].Car.Brand)
	assert.Equal(t, 2, merged[1].Car.EmpID)
	assert.Nil(t, merged[2].Car, "moving provider with no car record stays carless")
}

func TestAttachCars_IgnoresCarForNonMovingCategory(t *testing.T) {
	// Even a matching car record is ignored when the category is not Moving
	employees := []Employee{{ID: 5, CatID: 2}}
	cars := []Car{{ID: 20, EmpID: 5}}

	merged := AttachCars(employees, cars)
	assert.Nil(t, merged[0].Car)
}

func TestNormalize_FillsDefaults(t *testing.T) {
	e := Employee{ID: 1, CatID: 3}
	e.Normalize()

	assert.Equal(t, StatusInactive, e.Status)
	assert.Equal(t, CategoryLabel(3), e.CatName)
	assert.Equal(t, DefaultRating, e.Rating)
}

func TestNormalize_KeepsExistingValues(t *testing.T) {
	e := Employee{ID: 1, CatID: 1, Status: StatusActive, CatName: "custom", Rating: 3}
	e.Normalize()

	assert.Equal(t, StatusActive, e.Status)
	assert.Equal(t, "custom", e.CatName)
	assert.Equal(t, 3, e.Rating)
}

func TestApplyRatings(t *testing.T) {
	employees := []Employee{{ID: 1}, {ID: 2}, {ID: 3}}
	ApplyRatings(employees, map[int]int{1: 4, 3: 99})

	assert.Equal(t, 4, employees[0].Rating)
	assert.Equal(t, DefaultRating, employees[1].Rating, "unrated provider gets the default")
	assert.Equal(t, DefaultRating, employees[2].Rating, "out-of-range rating falls back to the default")
}
