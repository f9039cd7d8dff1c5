package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

// scanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func marshalSpec(spec *vizierv1.StudySpec) ([]byte, error) {
	if spec == nil {
		return nil, fmt.Errorf("study spec is required")
	}
	return protojson.Marshal(spec)
}

func unmarshalSpec(data []byte) (*vizierv1.StudySpec, error) {
	spec := &vizierv1.StudySpec{}
	if err := protojson.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("unmarshal study spec: %w", err)
	}
	return spec, nil
}

// Repeated proto fields are stored as JSON arrays of protojson elements so the
// columns stay readable with plain SQL tooling.
func marshalParameters(parameters []*vizierv1.Trial_Parameter) ([]byte, error) {
	elements := make([]json.RawMessage, 0, len(parameters))
	for _, parameter := range parameters {
		data, err := protojson.Marshal(parameter)
		if err != nil {
			return nil, fmt.Errorf("marshal trial parameter: %w", err)
		}
		elements = append(elements, data)
	}
	return json.Marshal(elements)
}

func unmarshalParameters(data []byte) ([]*vizierv1.Trial_Parameter, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("unmarshal trial parameters: %w", err)
	}
	parameters := make([]*vizierv1.Trial_Parameter, 0, len(elements))
	for _, element := range elements {
		parameter := &vizierv1.Trial_Parameter{}
		if err := protojson.Unmarshal(element, parameter); err != nil {
			return nil, fmt.Errorf("unmarshal trial parameter: %w", err)
		}
		parameters = append(parameters, parameter)
	}
	return parameters, nil
}

func marshalMeasurement(measurement *vizierv1.Measurement) ([]byte, error) {
	if measurement == nil {
		return nil, nil
	}
	data, err := protojson.Marshal(measurement)
	if err != nil {
		return nil, fmt.Errorf("marshal measurement: %w", err)
	}
	return data, nil
}

func unmarshalMeasurement(data []byte) (*vizierv1.Measurement, error) {
	if len(data) == 0 {
		return nil, nil
	}
	measurement := &vizierv1.Measurement{}
	if err := protojson.Unmarshal(data, measurement); err != nil {
		return nil, fmt.Errorf("unmarshal measurement: %w", err)
	}
	return measurement, nil
}

func marshalMeasurements(measurements []*vizierv1.Measurement) ([]byte, error) {
	elements := make([]json.RawMessage, 0, len(measurements))
	for _, measurement := range measurements {
		data, err := protojson.Marshal(measurement)
		if err != nil {
			return nil, fmt.Errorf("marshal measurement: %w", err)
		}
		elements = append(elements, data)
	}
	return json.Marshal(elements)
}

func unmarshalMeasurements(data []byte) ([]*vizierv1.Measurement, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("unmarshal measurements: %w", err)
	}
	measurements := make([]*vizierv1.Measurement, 0, len(elements))
	for _, element := range elements {
		measurement := &vizierv1.Measurement{}
		if err := protojson.Unmarshal(element, measurement); err != nil {
			return nil, fmt.Errorf("unmarshal measurement: %w", err)
		}
		measurements = append(measurements, measurement)
	}
	return measurements, nil
}

func marshalTrialBlobs(record storage.TrialRecord) (parameters, finalMeasurement, measurements []byte, err error) {
	parameters, err = marshalParameters(record.Parameters)
	if err != nil {
		return nil, nil, nil, err
	}
	finalMeasurement, err = marshalMeasurement(record.FinalMeasurement)
	if err != nil {
		return nil, nil, nil, err
	}
	measurements, err = marshalMeasurements(record.Measurements)
	if err != nil {
		return nil, nil, nil, err
	}
	return parameters, finalMeasurement, measurements, nil
}

func scanStudy(row scanner) (storage.StudyRecord, error) {
	var (
		record     storage.StudyRecord
		state      string
		spec       []byte
		createTime int64
	)
	err := row.Scan(&record.Name, &record.Owner, &record.StudyID,
		&record.DisplayName, &state, &spec, &createTime)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.StudyRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.StudyRecord{}, fmt.Errorf("scan study: %w", err)
	}
	record.State = storage.StudyState(state)
	record.CreateTime = fromMillis(createTime)
	if record.Spec, err = unmarshalSpec(spec); err != nil {
		return storage.StudyRecord{}, err
	}
	return record, nil
}

func scanTrial(row scanner) (storage.TrialRecord, error) {
	var (
		record           storage.TrialRecord
		state            string
		parameters       []byte
		finalMeasurement []byte
		measurements     []byte
		startTime        int64
		endTime          sql.NullInt64
	)
	err := row.Scan(&record.Name, &record.StudyName, &record.TrialID, &state,
		&record.ClientID, &parameters, &finalMeasurement, &measurements,
		&record.InfeasibleReason, &startTime, &endTime)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.TrialRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.TrialRecord{}, fmt.Errorf("scan trial: %w", err)
	}
	record.State = storage.TrialState(state)
	record.StartTime = fromMillis(startTime)
	record.EndTime = fromNullMillis(endTime)
	if record.Parameters, err = unmarshalParameters(parameters); err != nil {
		return storage.TrialRecord{}, err
	}
	if record.FinalMeasurement, err = unmarshalMeasurement(finalMeasurement); err != nil {
		return storage.TrialRecord{}, err
	}
	if record.Measurements, err = unmarshalMeasurements(measurements); err != nil {
		return storage.TrialRecord{}, err
	}
	return record, nil
}
