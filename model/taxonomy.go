package model

// Category is a top level grouping of doctors with its allowed specializations.
type Category struct {
	Name            string   `json:"name"`
	Specializations []string `json:"specializations"`
}

// Categories is the fixed doctor taxonomy, in display order.
var Categories = []Category{
	{Name: "Primary Care", Specializations: []string{"Physicians", "Internists", "Pediatricians"}},
	{Name: "Medical Specialists", Specializations: []string{
		"Cardiologists", "Dermatologists", "Neurologists", "Oncologists",
		"Gastroenterologists", "Psychiatrists", "Endocrinologists",
	}},
	{Name: "Surgical Specialists", Specializations: []string{
		"General Surgeons", "Orthopedic Surgeons", "Neurosurgeons", "Ophthalmologists",
	}},
	{Name: "Diagnostic & Support Specialists", Specializations: []string{"Radiologists", "X-rays", "CT scan", "MRIs"}},
}

// Departments are the tags a camp report may carry.
var Departments = []string{
	"General Medicine",
	"Ophthalmology",
	"Dental",
	"ENT",
	"Gynecology",
	"Pediatrics",
	"Orthopedics",
	"Dermatology",
}

// IsCategory reports whether name is a known category.
func IsCategory(name string) bool {
	_, ok := findCategory(name)
	return ok
}

// IsSpecialization reports whether spec belongs to category.
func IsSpecialization(category, spec string) bool {
	c, ok := findCategory(category)
	if !ok {
		return false
	}
	for _, s := range c.Specializations {
		if s == spec {
			return true
		}
	}
	return false
}

// IsDepartment reports whether name is one of Departments.
func IsDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

func findCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
