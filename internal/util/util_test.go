package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToExportedField(t *testing.T) {
	cases := map[string]string{
		"request_id":     "RequestId",
		"json_blob":      "JsonBlob",
		"is_binary_file": "IsBinaryFile",
		"modelHint":      "ModelHint",
		"x":              "X",
		"dry_run":        "DryRun",
		"_leading":       "Leading",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToExportedField(in), in)
	}
}

func TestToEnumConst(t *testing.T) {
	assert.Equal(t, "IncludeContextNone", ToEnumConst("IncludeContext", "INCLUDE_CONTEXT_NONE"))
	assert.Equal(t, "IncludeContextAllServers", ToEnumConst("IncludeContext", "INCLUDE_CONTEXT_ALL_SERVERS"))
	assert.Equal(t, "ColorRed", ToEnumConst("Color", "RED"))
	assert.Equal(t, "ColorDarkBlue2", ToEnumConst("Color", "dark-blue2"))
}

func TestTrimEnumPrefix(t *testing.T) {
	assert.Equal(t, "NONE", TrimEnumPrefix("IncludeContext", "INCLUDE_CONTEXT_NONE"))
	assert.Equal(t, "INCLUDE_CONTEXT_", TrimEnumPrefix("IncludeContext", "INCLUDE_CONTEXT_"), "nothing would be left")
	assert.Equal(t, "OTHER", TrimEnumPrefix("IncludeContext", "OTHER"))
}

func TestNamingHelpers(t *testing.T) {
	assert.Equal(t, "INCLUDE_CONTEXT", ScreamingSnake("IncludeContext"))
	assert.Equal(t, []string{"model", "Hint", "Name"}, SplitCamel("modelHintName"))
	assert.Equal(t, "Hello", TitleWord("hELLO"))
	assert.Equal(t, "", TitleWord(""))
	assert.Equal(t, "includeContext", LowerFirst("IncludeContext"))
	assert.Equal(t, "a 'b' c", SanitizeComment(" a `b`\n   c \n"))
}
