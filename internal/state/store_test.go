package state

import (
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_Store_EducationScenario_ShouldHoldLatestFields(t *testing.T) {

	assert := assert.New(t)

	store := NewStore[models.EducationEntry](SequentialIDs())
	store = store.Add(models.EducationEntry{})
	id := store.All()[0].ID

	store, err := store.Update(id, models.FieldSchool, "MIT")
	assert.NoError(err)
	store, err = store.Update(id, models.FieldDegree, "CS")
	assert.NoError(err)

	assert.Equal(1, store.Len())
	assert.Equal(models.EducationEntry{ID: id, School: "MIT", Degree: "CS", Year: ""}, store.All()[0])
}

func Test_Store_Add_ShouldNotTouchPreviousSnapshot(t *testing.T) {

	assert := assert.New(t)

	before := NewStore[models.SkillEntry](SequentialIDs(), models.SkillEntry{ID: "a", Name: "Go"})
	after := before.Add(models.NewSkill())

	assert.Equal(1, before.Len())
	assert.Equal(2, after.Len())
	assert.Equal(models.Beginner, after.All()[1].Level)
	assert.NotEqual("a", after.All()[1].ID)
}

func Test_Store_Update_WhenIDUnknown_ShouldReturnSameSequence(t *testing.T) {

	assert := assert.New(t)

	store := NewStore[models.EducationEntry](SequentialIDs(), models.EducationEntry{ID: "1", School: "IIT"})

	updated, err := store.Update("missing", models.FieldSchool, "MIT")

	assert.NoError(err)
	assert.Equal(store.All(), updated.All())
}

func Test_Store_Update_WhenFieldUnknown_ShouldFail(t *testing.T) {

	assert := assert.New(t)

	store := NewStore[models.EducationEntry](SequentialIDs(), models.EducationEntry{ID: "1"})

	updated, err := store.Update("1", "gpa", "4.0")

	assert.ErrorIs(err, models.ErrUnknownField)
	assert.Equal(store.All(), updated.All())
}

func Test_Store_Update_WhenSkillLevelInvalid_ShouldFail(t *testing.T) {

	store := NewStore[models.SkillEntry](SequentialIDs(), models.SkillEntry{ID: "1", Level: models.Beginner})

	updated, err := store.Update("1", models.FieldLevel, "Guru")

	assert.ErrorIs(t, err, models.ErrInvalidValue)
	assert.Equal(t, models.Beginner, updated.All()[0].Level)
}

func Test_Store_Update_ShouldLeaveOldSnapshotIntact(t *testing.T) {

	assert := assert.New(t)

	before := NewStore[models.ExperienceEntry](SequentialIDs(),
		models.ExperienceEntry{ID: "1", Company: "Acme"},
		models.ExperienceEntry{ID: "2", Company: "Globex"})

	after, err := before.Update("1", models.FieldCompany, "Initech")

	assert.NoError(err)
	assert.Equal("Acme", before.All()[0].Company)
	assert.Equal("Initech", after.All()[0].Company)
	assert.Equal(before.All()[1], after.All()[1])
}

func Test_Store_Remove_ShouldDropOnlyMatchingRecord(t *testing.T) {

	assert := assert.New(t)

	store := NewStore[models.EducationEntry](SequentialIDs(),
		models.EducationEntry{ID: "1"}, models.EducationEntry{ID: "2"}, models.EducationEntry{ID: "3"})

	removed := store.Remove("2")
	assert.Equal([]string{"1", "3"}, ids(removed))
	assert.Equal(3, store.Len())

	assert.Equal(ids(removed), ids(removed.Remove("missing")))
}

func Test_Store_MixedOperations_ShouldMatchAddedMinusRemoved(t *testing.T) {

	assert := assert.New(t)

	store := NewStore[models.EducationEntry](SequentialIDs())
	for i := 0; i < 5; i++ {
		store = store.Add(models.EducationEntry{})
	}
	store = store.Remove("2").Remove("4")

	var err error
	store, err = store.Update("3", models.FieldYear, "2019")
	assert.NoError(err)
	store, err = store.Update("3", models.FieldYear, "2020")
	assert.NoError(err)
	store, err = store.Update("2", models.FieldYear, "1999")
	assert.NoError(err)

	assert.Equal([]string{"1", "3", "5"}, ids(store))
	record, found := store.Get("3")
	assert.True(found)
	assert.Equal("2020", record.Year)
}

func Test_Store_At_ShouldUseOneBasedPositions(t *testing.T) {

	assert := assert.New(t)

	store := NewStore[models.EducationEntry](SequentialIDs(), models.EducationEntry{ID: "x"})

	record, found := store.At(1)
	assert.True(found)
	assert.Equal("x", record.ID)

	_, found = store.At(0)
	assert.False(found)
	_, found = store.At(2)
	assert.False(found)
}

func Test_Store_Add_WhenGeneratorRepeats_ShouldStillBeUnique(t *testing.T) {

	calls := 0
	generator := func() string {
		calls++
		if calls < 3 {
			return "same"
		}
		return "other"
	}

	store := NewStore[models.EducationEntry](generator, models.EducationEntry{ID: "same"})
	store = store.Add(models.EducationEntry{})

	assert.Equal(t, []string{"same", "other"}, ids(store))
}

func Test_NewUUID_ShouldBeUnique(t *testing.T) {
	assert.NotEqual(t, NewUUID(), NewUUID())
}

func ids[T Record[T]](store Store[T]) []string {
	var result []string
	for _, record := range store.All() {
		result = append(result, record.GetID())
	}
	return result
}
