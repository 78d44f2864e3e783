package promotion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Source CSV headers.
const (
	colDepartment         = "department"
	colRegion             = "region"
	colEducation          = "education"
	colGender             = "gender"
	colRecruitmentChannel = "recruitment_channel"
	colNoOfTrainings      = "no_of_trainings"
	colPreviousYearRating = "previous_year_rating"
	colLengthOfService    = "length_of_service"
	colKPIsMet            = "KPIs_met >80%"
	colAwardsWon          = "awards_won?"
	colAvgTrainingScore   = "avg_training_score"
	colIsPromoted         = "is_promoted"
)

var requiredColumns = []string{
	colDepartment,
	colRegion,
	colEducation,
	colGender,
	colRecruitmentChannel,
	colNoOfTrainings,
	colPreviousYearRating,
	colLengthOfService,
	colKPIsMet,
	colAwardsWon,
	colAvgTrainingScore,
	colIsPromoted,
}

var genderLabels = map[string]string{"m": "Male", "f": "Female"}

var errMalformed = errors.New("malformed value")

// LoadStats reports what happened while reading a CSV.
type LoadStats struct {
	Rows    int
	Kept    int
	Dropped int
}

// LoadFile opens path and parses it with LoadCSV.
func LoadFile(path string) (*Table, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("promotion: open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadCSV(f)
}

// LoadCSV parses an employee CSV into a Table. Rows with any empty cell, or with values
// that cannot be normalised, are dropped. Extra columns are ignored for mapping but still
// count towards the empty-cell check.
func LoadCSV(r io.Reader) (*Table, LoadStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("promotion: read header: %w", err)
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		index[h] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, LoadStats{}, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var stats LoadStats
	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.Rows++
				stats.Dropped++
				continue
			}
			return nil, stats, fmt.Errorf("promotion: read row: %w", err)
		}
		stats.Rows++
		if len(row) != len(headers) || hasEmptyCell(row) {
			stats.Dropped++
			continue
		}
		rec, err := parseRecord(row, index)
		if err != nil {
			stats.Dropped++
			continue
		}
		records = append(records, rec)
	}
	stats.Kept = len(records)
	return NewTable(records), stats, nil
}

func hasEmptyCell(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) == "" {
			return true
		}
	}
	return false
}

func parseRecord(row []string, index map[string]int) (Record, error) {
	get := func(col string) string {
		return strings.TrimSpace(row[index[col]])
	}

	gender, ok := genderLabels[strings.ToLower(get(colGender))]
	if !ok {
		return Record{}, errMalformed
	}
	kpis, err := parseFlag(get(colKPIsMet))
	if err != nil {
		return Record{}, err
	}
	awards, err := parseFlag(get(colAwardsWon))
	if err != nil {
		return Record{}, err
	}
	promoted, err := parseFlag(get(colIsPromoted))
	if err != nil {
		return Record{}, err
	}
	rating, err := strconv.ParseFloat(get(colPreviousYearRating), 64)
	if err != nil {
		return Record{}, errMalformed
	}
	score, err := strconv.ParseFloat(get(colAvgTrainingScore), 64)
	if err != nil {
		return Record{}, errMalformed
	}
	service, err := parseWhole(get(colLengthOfService))
	if err != nil {
		return Record{}, err
	}
	trainings, err := parseWhole(get(colNoOfTrainings))
	if err != nil {
		return Record{}, err
	}

	return Record{
		Department:         get(colDepartment),
		Region:             get(colRegion),
		Education:          get(colEducation),
		Gender:             gender,
		RecruitmentChannel: get(colRecruitmentChannel),
		KPIsMet:            kpis,
		AwardsWon:          awards,
		PreviousYearRating: rating,
		LengthOfService:    service,
		AvgTrainingScore:   score,
		NoOfTrainings:      trainings,
		Promoted:           promoted,
	}, nil
}

// parseFlag maps 0/1 encodings to No/Yes.
func parseFlag(raw string) (string, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", errMalformed
	}
	switch v {
	case 0:
		return FlagNo, nil
	case 1:
		return FlagYes, nil
	default:
		return "", errMalformed
	}
}

// parseWhole accepts integers written either as "3" or "3.0".
func parseWhole(raw string) (int, error) {
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, errMalformed
	}
	return int(f), nil
}
