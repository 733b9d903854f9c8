package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeJSON_MinimalValid(t *testing.T) {
	data := []byte(`{"basics": {"name": "Dana Smith"}}`)

	assert.NoError(t, ValidateResumeJSON(data))
}

func TestValidateResumeJSON_FullDocument(t *testing.T) {
	data := []byte(`{
		"basics": {
			"name": "Dana Smith",
			"email": "dana@example.com",
			"phone": "555-0100",
			"summary": "Backend engineer."
		},
		"work": [{
			"name": "Acme",
			"position": "Engineer",
			"startDate": "2018-01",
			"endDate": "2024-01",
			"highlights": ["Shipped services"]
		}],
		"education": [{"institution": "State University", "area": "CS"}],
		"skills": [{"name": "Languages", "keywords": ["Python", "Go"]}],
		"certificates": [{"name": "AWS Certified", "issuer": "AWS"}],
		"projects": [{"name": "Sideproject", "description": "A tool."}],
		"meta": {"resumeId": "abc-123"}
	}`)

	assert.NoError(t, ValidateResumeJSON(data))
}

func TestValidateResumeJSON_MissingBasics(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"work": []}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResumeJSON_MissingName(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"basics": {"email": "dana@example.com"}}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "name")
}

func TestValidateResumeJSON_WrongFieldType(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"basics": {"name": "Dana"}, "work": "not an array"}`))

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateResumeJSON_MalformedJSON(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{not json`))

	require.Error(t, err)
	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve)
}
