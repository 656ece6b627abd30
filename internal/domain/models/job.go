package models

type JobType string

const (
	FullTime   JobType = "Full-time"
	PartTime   JobType = "Part-time"
	Contract   JobType = "Contract"
	Internship JobType = "Internship"
)

func JobTypes() []JobType {
	return []JobType{FullTime, PartTime, Contract, Internship}
}

func ToJobType(s string) (JobType, error) {
	switch s {
	case string(FullTime):
		return FullTime, nil
	case string(PartTime):
		return PartTime, nil
	case string(Contract):
		return Contract, nil
	case string(Internship):
		return Internship, nil
	default:
		return "", invalidValue("job type", s)
	}
}

type WorkLocation string

const (
	Remote WorkLocation = "Remote"
	OnSite WorkLocation = "On-site"
	Hybrid WorkLocation = "Hybrid"
)

func WorkLocations() []WorkLocation {
	return []WorkLocation{Remote, OnSite, Hybrid}
}

func ToWorkLocation(s string) (WorkLocation, error) {
	switch s {
	case string(Remote):
		return Remote, nil
	case string(OnSite):
		return OnSite, nil
	case string(Hybrid):
		return Hybrid, nil
	default:
		return "", invalidValue("work location", s)
	}
}

// Filter categories a job posting can be narrowed by.
const (
	FilterCategoryType     = "type"
	FilterCategoryLocation = "location"
)

func FilterCategories() []string {
	return []string{FilterCategoryType, FilterCategoryLocation}
}

// ToFilterValue checks that value belongs to the enum behind category.
func ToFilterValue(category, value string) (string, error) {
	switch category {
	case FilterCategoryType:
		jobType, err := ToJobType(value)
		return string(jobType), err
	case FilterCategoryLocation:
		location, err := ToWorkLocation(value)
		return string(location), err
	default:
		return "", unknownField("job filter", category)
	}
}

// FilterValues lists the selectable values of category in display order.
func FilterValues(category string) []string {
	var values []string
	switch category {
	case FilterCategoryType:
		for _, t := range JobTypes() {
			values = append(values, string(t))
		}
	case FilterCategoryLocation:
		for _, l := range WorkLocations() {
			values = append(values, string(l))
		}
	}
	return values
}

type JobPosting struct {
	ID           string `gorm:"primaryKey"`
	Title        string
	Company      string
	Location     string
	Salary       string
	Type         JobType
	WorkLocation WorkLocation
	Logo         string
	PostedDate   string
}

func (j JobPosting) GetID() string {
	return j.ID
}

// FilterValue returns the posting's value for a filter category.
func (j JobPosting) FilterValue(category string) (string, bool) {
	switch category {
	case FilterCategoryType:
		return string(j.Type), true
	case FilterCategoryLocation:
		return string(j.WorkLocation), true
	default:
		return "", false
	}
}
