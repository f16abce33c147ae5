// pkg/source/places.go
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
)

// placeColumn is the preferred header of the reference city file.
const placeColumn = "CITY_DESC"

// ReadPlaceList loads the reference place set from a CSV file. Names come
// from the CITY_DESC column when the header carries one, otherwise from the
// first column. The header row is never treated as a place name.
func ReadPlaceList(path string, logger *zap.Logger) (model.PlaceSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.PlaceSet{}, fmt.Errorf("failed to open place list %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return model.PlaceSet{}, fmt.Errorf("failed to parse place list %s: %w", path, err)
	}
	if len(rows) == 0 {
		return model.PlaceSet{}, errors.New("place list file is empty")
	}

	column := 0
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == placeColumn {
			column = i
			break
		}
	}

	var names []string
	for _, row := range rows[1:] {
		if column < len(row) {
			names = append(names, row[column])
		}
	}

	places := model.NewPlaceSet(names)
	logger.Info("Loaded place list",
		zap.String("path", path),
		zap.Int("places", places.Len()))

	return places, nil
}
