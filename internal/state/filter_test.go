package state

import (
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_FilterSet_ToggleTwice_ShouldRestoreOriginal(t *testing.T) {

	assert := assert.New(t)

	original := NewFilterSet().Toggle(models.FilterCategoryLocation, string(models.Remote))
	toggled := original.
		Toggle(models.FilterCategoryType, string(models.FullTime)).
		Toggle(models.FilterCategoryType, string(models.FullTime))

	assert.True(original.Equal(toggled))

	toggled = original.
		Toggle(models.FilterCategoryLocation, string(models.Remote)).
		Toggle(models.FilterCategoryLocation, string(models.Remote))
	assert.True(original.Equal(toggled))
}

func Test_FilterSet_Toggle_ShouldNotAffectOtherCategoriesOrOldSnapshot(t *testing.T) {

	assert := assert.New(t)

	before := NewFilterSet().Toggle(models.FilterCategoryType, string(models.Contract))
	after := before.Toggle(models.FilterCategoryLocation, string(models.Hybrid))

	assert.True(after.Has(models.FilterCategoryType, string(models.Contract)))
	assert.True(after.Has(models.FilterCategoryLocation, string(models.Hybrid)))
	assert.False(before.Has(models.FilterCategoryLocation, string(models.Hybrid)))
}

func Test_FilterSet_Selected_ShouldFollowGivenOrder(t *testing.T) {

	filter := NewFilterSet().
		Toggle(models.FilterCategoryType, string(models.Internship)).
		Toggle(models.FilterCategoryType, string(models.FullTime))

	assert.Equal(t, []string{"Full-time", "Internship"},
		filter.Selected(models.FilterCategoryType, models.FilterValues(models.FilterCategoryType)))
}

func Test_Matches_ShouldAndCategoriesAndOrValues(t *testing.T) {

	job := models.JobPosting{ID: "1", Type: models.FullTime, WorkLocation: models.Hybrid}

	tests := []struct {
		name   string
		filter FilterSet
		want   bool
	}{
		{"empty filter", NewFilterSet(), true},
		{"type matches", NewFilterSet().Toggle(models.FilterCategoryType, "Full-time"), true},
		{"type differs", NewFilterSet().Toggle(models.FilterCategoryType, "Contract"), false},
		{"one of types", NewFilterSet().
			Toggle(models.FilterCategoryType, "Contract").
			Toggle(models.FilterCategoryType, "Full-time"), true},
		{"type and location match", NewFilterSet().
			Toggle(models.FilterCategoryType, "Full-time").
			Toggle(models.FilterCategoryLocation, "Hybrid"), true},
		{"location differs", NewFilterSet().
			Toggle(models.FilterCategoryType, "Full-time").
			Toggle(models.FilterCategoryLocation, "Remote"), false},
		{"emptied category", NewFilterSet().
			Toggle(models.FilterCategoryLocation, "Remote").
			Toggle(models.FilterCategoryLocation, "Remote"), true},
		{"unknown category", NewFilterSet().Toggle("salary", "high"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Matches(job, test.filter))
		})
	}
}

func Test_FilterSet_Clear_ShouldLeaveOriginalUntouched(t *testing.T) {

	assert := assert.New(t)
	set := NewFilterSet().Toggle("type", "Full-time").Toggle("location", "Remote")

	cleared := set.Clear()

	assert.True(cleared.IsEmpty())
	assert.True(set.Has("type", "Full-time"))
	assert.True(set.Has("location", "Remote"))
}
