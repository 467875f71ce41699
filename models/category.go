package models

// Category represents a fixed service type in the HomeCare marketplace
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// CategoryMoving is the only category that requires an associated vehicle
const CategoryMoving = 5

// categoryLabels is the single source of truth for category id -> Lao label.
// The dashboard previously duplicated this table across screens; keep it here
// and nowhere else.
var categoryLabels = map[int]string{
	1: "ທຳຄວາມສະອາດ",
	2: "ສ້ອມແປງໄຟຟ້າ",
	3: "ສ້ອມແປງແອ",
	4: "ສ້ອມແປງປະປາ",
	5: "ແກ່ເຄື່ອງ",
	6: "ດູດສ້ວມ",
	7: "ກຳຈັດປວກ",
}

// CategoryLabelFallback is used for ids outside the known set
const CategoryLabelFallback = "ບໍລິການອື່ນໆ"

// CategoryLabel maps a category id to its Lao display label.
// Unknown ids fall back to a generic label instead of failing.
func CategoryLabel(id int) string {
	if label, ok := categoryLabels[id]; ok {
		return label
	}
	return CategoryLabelFallback
}

// KnownCategories returns the fixed category set in id order
func KnownCategories() []Category {
	categories := make([]Category, 0, len(categoryLabels))
	for id := 1; id <= len(categoryLabels); id++ {
		categories = append(categories, Category{ID: id, Name: categoryLabels[id]})
	}
	return categories
}

// RequiresCar reports whether providers in the category must register a vehicle
func RequiresCar(catID int) bool {
	return catID == CategoryMoving
}
