package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkills_SplitsAndTrims(t *testing.T) {
	skills := ParseSkills("a, b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, skills)
}

func TestParseSkills_KeepsEmptyTokens(t *testing.T) {
	// Tokens are stored verbatim after trimming, including empty ones.
	skills := ParseSkills("go,, rust ,")
	assert.Equal(t, []string{"go", "", "rust", ""}, skills)
}

func TestNew_FixesOwnerAndAppliesFields(t *testing.T) {
	ownerID := uuid.New()
	p := New(ownerID, UpdateFields{
		Status: "Developer",
		Skills: "go,sql",
		Social: map[string]string{"twitter": "https://twitter.com/dev"},
	})

	assert.Equal(t, ownerID, p.OwnerID)
	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, []string{"go", "sql"}, p.Skills)
	assert.Equal(t, "https://twitter.com/dev", p.Social["twitter"])
	assert.Empty(t, p.Experience)
	assert.Empty(t, p.Education)
}

func TestApplyUpdate_SuppliedFieldsOverwrite(t *testing.T) {
	p := New(uuid.New(), UpdateFields{Status: "Developer", Skills: "go", Company: "Acme"})

	p.ApplyUpdate(UpdateFields{Status: "Senior Developer", Skills: "go,kubernetes", Company: "Globex"})

	assert.Equal(t, "Senior Developer", p.Status)
	assert.Equal(t, []string{"go", "kubernetes"}, p.Skills)
	assert.Equal(t, "Globex", p.Company)
}

func TestApplyUpdate_OmittedFieldsKeepPreviousValue(t *testing.T) {
	p := New(uuid.New(), UpdateFields{
		Status:   "Developer",
		Skills:   "go",
		Company:  "Acme",
		Location: "Hanoi",
		Social:   map[string]string{"youtube": "https://youtube.com/@dev"},
	})

	// Second update supplies only the required fields; everything else must
	// survive, including the social links.
	p.ApplyUpdate(UpdateFields{Status: "Developer", Skills: "go"})

	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "Hanoi", p.Location)
	assert.Equal(t, "https://youtube.com/@dev", p.Social["youtube"])
}

func TestApplyUpdate_IgnoresUnknownSocialPlatforms(t *testing.T) {
	p := New(uuid.New(), UpdateFields{
		Status: "Developer",
		Skills: "go",
		Social: map[string]string{"myspace": "https://myspace.com/dev"},
	})

	_, ok := p.Social["myspace"]
	assert.False(t, ok)
}

func TestApplyUpdate_DoesNotTouchSubCollections(t *testing.T) {
	p := New(uuid.New(), UpdateFields{Status: "Developer", Skills: "go"})
	p.AddExperience(Experience{Title: "Engineer", Company: "Acme", From: time.Now()})

	p.ApplyUpdate(UpdateFields{Status: "Lead", Skills: "go"})

	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Engineer", p.Experience[0].Title)
}

func TestAddExperience_PrependsNewestFirst(t *testing.T) {
	p := New(uuid.New(), UpdateFields{Status: "Developer", Skills: "go"})

	p.AddExperience(Experience{Title: "E1", Company: "Acme", From: time.Now()})
	p.AddExperience(Experience{Title: "E2", Company: "Acme", From: time.Now()})

	require.Len(t, p.Experience, 2)
	assert.Equal(t, "E2", p.Experience[0].Title)
	assert.Equal(t, "E1", p.Experience[1].Title)
}

func TestAddExperience_AssignsUniqueIDs(t *testing.T) {
	p := New(uuid.New(), UpdateFields{Status: "Developer", Skills: "go"})

	// Both inserts land within the same millisecond; ids must still differ.
	e1 := p.AddExperience(Experience{Title: "E1", Company: "Acme", From: time.Now()})
	e2 := p.AddExperience(Experience{Title: "E2", Company: "Acme", From: time.Now()})

	assert.NotEqual(t, uuid.Nil, e1.ID)
	assert.NotEqual(t, uuid.Nil, e2.ID)
	assert.NotEqual(t, e1.ID, e2.ID)
}

func TestRemoveExperience_RemovesFirstMatchOnly(t *testing.T) {
	p := New(uuid.New(), UpdateFields{Status: "Developer", Skills: "go"})
	e1 := p.AddExperience(Experience{Title: "E1", Company: "Acme", From: time.Now()})
	e2 := p.AddExperience(Experience{Title: "E2", Company: "Acme", From: time.Now()})

	removed := p.RemoveExperience(e2.ID)

	assert.True(t, removed)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, e1.ID, p.Experience[0].ID)
}

func TestRemoveExperience_MissIsNoOp(t *testing.T) {
	p := New(uuid.New(), UpdateFields{Status: "Developer", Skills: "go"})
	p.AddExperience(Experience{Title: "E1", Company: "Acme", From: time.Now()})

	removed := p.RemoveExperience(uuid.New())

	assert.False(t, removed)
	assert.Len(t, p.Experience, 1)
}

func TestRemoveExperience_PreservesOrderOfRemaining(t *testing.T) {
	p := New(uuid.New(), UpdateFields{Status: "Developer", Skills: "go"})
	e1 := p.AddExperience(Experience{Title: "E1", Company: "Acme", From: time.Now()})
	e2 := p.AddExperience(Experience{Title: "E2", Company: "Acme", From: time.Now()})
	e3 := p.AddExperience(Experience{Title: "E3", Company: "Acme", From: time.Now()})

	p.RemoveExperience(e2.ID)

	require.Len(t, p.Experience, 2)
	assert.Equal(t, e3.ID, p.Experience[0].ID)
	assert.Equal(t, e1.ID, p.Experience[1].ID)
}

func TestEducation_SameLifecycleAsExperience(t *testing.T) {
	p := New(uuid.New(), UpdateFields{Status: "Developer", Skills: "go"})

	ed1 := p.AddEducation(Education{School: "S1", Degree: "BSc", FieldOfStudy: "CS", From: time.Now()})
	ed2 := p.AddEducation(Education{School: "S2", Degree: "MSc", FieldOfStudy: "CS", From: time.Now()})

	require.Len(t, p.Education, 2)
	assert.Equal(t, ed2.ID, p.Education[0].ID)
	assert.NotEqual(t, ed1.ID, ed2.ID)

	assert.False(t, p.RemoveEducation(uuid.New()))
	assert.Len(t, p.Education, 2)

	assert.True(t, p.RemoveEducation(ed2.ID))
	require.Len(t, p.Education, 1)
	assert.Equal(t, ed1.ID, p.Education[0].ID)
}
