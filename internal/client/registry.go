package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Antonio12313/mexase-api/internal/models"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// Login exchanges credentials for a bearer token at the record API.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "senha": password}
	var out types.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// GetBaselineDietaryData reports whether the patient already has baseline
// dietary data on file. Absence is not an error: the wizard uses it to decide
// its initial stage.
func (c *Client) GetBaselineDietaryData(ctx context.Context, token string, patientID int) (*models.DietaryData, bool, error) {
	var data models.DietaryData
	path := fmt.Sprintf("/paciente/%d/dados-dieteticos", patientID)
	err := c.do(ctx, http.MethodGet, path, token, nil, &data)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &data, true, nil
}

// SaveBaselineDietaryData creates or updates the patient's dietary baseline.
func (c *Client) SaveBaselineDietaryData(ctx context.Context, token string, patientID int, data *models.DietaryData, editing bool) error {
	method := http.MethodPost
	if editing {
		method = http.MethodPut
	}
	path := fmt.Sprintf("/paciente/%d/dados-dieteticos", patientID)
	return c.do(ctx, method, path, token, data, nil)
}

// GetFamilyHistory fetches the patient-level family history baseline.
func (c *Client) GetFamilyHistory(ctx context.Context, token string, patientID int) (*models.FamilyHistory, error) {
	var data models.FamilyHistory
	path := fmt.Sprintf("/paciente/%d/historico-familiar", patientID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SaveFamilyHistory creates or updates the family history baseline.
func (c *Client) SaveFamilyHistory(ctx context.Context, token string, patientID int, data *models.FamilyHistory, editing bool) error {
	method := http.MethodPost
	if editing {
		method = http.MethodPut
	}
	path := fmt.Sprintf("/paciente/%d/historico-familiar", patientID)
	return c.do(ctx, method, path, token, data, nil)
}

// GetLifestyle fetches the patient-level lifestyle baseline.
func (c *Client) GetLifestyle(ctx context.Context, token string, patientID int) (*models.Lifestyle, error) {
	var data models.Lifestyle
	path := fmt.Sprintf("/paciente/%d/estilo-vida", patientID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SaveLifestyle creates or updates the lifestyle baseline.
func (c *Client) SaveLifestyle(ctx context.Context, token string, patientID int, data *models.Lifestyle, editing bool) error {
	method := http.MethodPost
	if editing {
		method = http.MethodPut
	}
	path := fmt.Sprintf("/paciente/%d/estilo-vida", patientID)
	return c.do(ctx, method, path, token, data, nil)
}

// ListPatients returns one page of the registry, optionally filtered by a
// single field=value pair the way the dashboard listing does.
func (c *Client) ListPatients(ctx context.Context, token string, page, limit int, filterKey, filterValue string) (*types.PatientList, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("limit", fmt.Sprintf("%d", limit))
	if filterKey != "" && filterValue != "" {
		q.Set(filterKey, filterValue)
	}
	var list types.PatientList
	if err := c.do(ctx, http.MethodGet, "/pacientes?"+q.Encode(), token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPatient fetches one registry patient.
func (c *Client) GetPatient(ctx context.Context, token string, id int) (*models.Patient, error) {
	var p models.Patient
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/paciente/%d", id), token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePatient registers a patient and returns the stored record.
func (c *Client) CreatePatient(ctx context.Context, token string, p *models.Patient) (*models.Patient, error) {
	var created models.Patient
	if err := c.do(ctx, http.MethodPost, "/paciente", token, p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePatient replaces the patient's registry data.
func (c *Client) UpdatePatient(ctx context.Context, token string, id int, p *models.Patient) (*models.Patient, error) {
	var updated models.Patient
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/paciente/%d", id), token, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeactivatePatient soft-disables the patient; the registry never deletes.
func (c *Client) DeactivatePatient(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/paciente/%d/inativar", id), token, struct{}{}, nil)
}

// GetNutritionist fetches a professional account by id.
func (c *Client) GetNutritionist(ctx context.Context, token string, id int) (*models.Nutritionist, error) {
	var n models.Nutritionist
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/nutricionista/%d", id), token, nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListSectors returns the hospital sector reference list.
func (c *Client) ListSectors(ctx context.Context, token string) (*types.SectorList, error) {
	var list types.SectorList
	if err := c.do(ctx, http.MethodGet, "/setores", token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// PatientsByGender returns the gender distribution chart series.
func (c *Client) PatientsByGender(ctx context.Context, token string) ([]types.ChartPoint, error) {
	var points []types.ChartPoint
	if err := c.do(ctx, http.MethodGet, "/pacientes/por-genero", token, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// PatientsBySector returns the sector distribution chart series.
func (c *Client) PatientsBySector(ctx context.Context, token string) ([]types.ChartPoint, error) {
	var points []types.ChartPoint
	if err := c.do(ctx, http.MethodGet, "/pacientes/por-setor", token, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}
