// pkg/validator/classifier_test.go
package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
)

var testToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testPlaces() model.PlaceSet {
	return model.NewPlaceSet([]string{"JAKARTA", "SURABAYA", "BANDUNG"})
}

func cleanRecord() model.Record {
	return model.Record{
		model.FieldKKNo:       model.Text("3171012345678901"),
		model.FieldNIK:        model.Text("3171015504900001"),
		model.FieldCustName:   model.Text("SITI AMINAH"),
		model.FieldGender:     model.Text("PEREMPUAN"),
		model.FieldBirthPlace: model.Text("JAKARTA"),
		model.FieldBirthDate:  model.Text("15/04/1990"),
	}
}

func TestNewClassifier(t *testing.T) {
	t.Run("nil logger rejected", func(t *testing.T) {
		_, err := NewClassifier(testPlaces(), testToday, nil)
		assert.Error(t, err)
	})

	t.Run("valid arguments", func(t *testing.T) {
		c, err := NewClassifier(testPlaces(), testToday, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestClassifyCleanRecord(t *testing.T) {
	c, err := NewClassifier(testPlaces(), testToday, zap.NewNop())
	require.NoError(t, err)

	outcome := c.Classify(cleanRecord())

	assert.True(t, outcome.Clean)
	assert.Empty(t, outcome.Failures)
	assert.Equal(t, "", outcome.Description())
	assert.Len(t, outcome.Results, 6)
	for rule, passed := range outcome.Results {
		assert.True(t, passed, "rule %s should pass", rule)
	}
}

func TestClassifyAccumulatesFailuresInOrder(t *testing.T) {
	c, err := NewClassifier(testPlaces(), testToday, zap.NewNop())
	require.NoError(t, err)

	rec := cleanRecord()
	rec[model.FieldKKNo] = model.Text("123")
	rec[model.FieldGender] = model.Text("WANITA")
	rec[model.FieldBirthDate] = model.Text("31/12/2999")

	outcome := c.Classify(rec)

	assert.False(t, outcome.Clean)
	require.Len(t, outcome.Failures, 3)
	assert.Equal(t, "Invalid KK_NO (123)", outcome.Failures[0])
	assert.Equal(t, "Invalid Gender (WANITA)", outcome.Failures[1])
	assert.Equal(t, "Invalid Birth Date (31/12/2999)", outcome.Failures[2])
	assert.Equal(t,
		"Invalid KK_NO (123); Invalid Gender (WANITA); Invalid Birth Date (31/12/2999); ",
		outcome.Description())
}

func TestClassifyMissingValueRendersEmpty(t *testing.T) {
	c, err := NewClassifier(testPlaces(), testToday, zap.NewNop())
	require.NoError(t, err)

	rec := cleanRecord()
	rec[model.FieldKKNo] = model.Missing()

	outcome := c.Classify(rec)

	require.Len(t, outcome.Failures, 1)
	assert.Equal(t, "Invalid KK_NO ()", outcome.Failures[0])
}

func TestClassifyEvaluatesAllRulesDespiteEarlyFailure(t *testing.T) {
	c, err := NewClassifier(testPlaces(), testToday, zap.NewNop())
	require.NoError(t, err)

	rec := model.Record{
		model.FieldKKNo:       model.Missing(),
		model.FieldNIK:        model.Missing(),
		model.FieldCustName:   model.Missing(),
		model.FieldGender:     model.Missing(),
		model.FieldBirthPlace: model.Missing(),
		model.FieldBirthDate:  model.Missing(),
	}

	outcome := c.Classify(rec)

	assert.Len(t, outcome.Results, 6)
	assert.Len(t, outcome.Failures, 6)
}
