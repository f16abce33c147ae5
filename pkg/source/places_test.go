// pkg/source/places_test.go
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadPlaceListWithCityDescColumn(t *testing.T) {
	path := writeTempFile(t, "cities.csv",
		"CITY_ID,CITY_DESC,PROVINCE\n"+
			"1,jakarta,DKI\n"+
			"2, Surabaya ,JATIM\n"+
			"3,BANDUNG,JABAR\n")

	places, err := ReadPlaceList(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, places.Len())
	assert.True(t, places.Contains("JAKARTA"))
	assert.True(t, places.Contains("SURABAYA"))
	assert.True(t, places.Contains("bandung"))
	assert.False(t, places.Contains("DKI"))
}

func TestReadPlaceListFallsBackToFirstColumn(t *testing.T) {
	path := writeTempFile(t, "cities.csv",
		"NAME,REGION\n"+
			"MEDAN,SUMUT\n"+
			"PADANG,SUMBAR\n")

	places, err := ReadPlaceList(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, places.Len())
	assert.True(t, places.Contains("MEDAN"))
	assert.True(t, places.Contains("PADANG"))
	// Header row is consumed, never a member
	assert.False(t, places.Contains("NAME"))
}

func TestReadPlaceListEmptyFile(t *testing.T) {
	path := writeTempFile(t, "cities.csv", "")

	_, err := ReadPlaceList(path, zap.NewNop())
	assert.Error(t, err)
}

func TestReadPlaceListMissingFile(t *testing.T) {
	_, err := ReadPlaceList(filepath.Join(t.TempDir(), "nope.csv"), zap.NewNop())
	assert.Error(t, err)
}

func TestReadPlaceListSkipsBlankNames(t *testing.T) {
	path := writeTempFile(t, "cities.csv",
		"CITY_DESC\n"+
			"JAKARTA\n"+
			"   \n"+
			"\"\"\n")

	places, err := ReadPlaceList(path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, places.Len())
}
