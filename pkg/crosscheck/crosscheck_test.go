package crosscheck

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shoenig/test/must"
)

func Test_Compare_agreement(t *testing.T) {
	v := NewValidator()
	result := v.Compare("User CPU Time", []Source{
		{Name: "cpustats", Value: 100.0, Unit: "s"},
		{Name: "gopsutil", Value: 101.0, Unit: "s"},
	})

	must.Eq(t, StatusValid, result.Status)
	must.Eq(t, 100.5, result.Consensus)
}

func Test_Compare_suspect(t *testing.T) {
	v := NewValidator()
	result := v.Compare("User CPU Time", []Source{
		{Name: "a", Value: 100.0},
		{Name: "b", Value: 112.0},
	})

	must.Eq(t, StatusSuspect, result.Status)
}

func Test_Compare_conflict(t *testing.T) {
	v := NewValidator()
	result := v.Compare("User CPU Time", []Source{
		{Name: "a", Value: 100.0},
		{Name: "b", Value: 160.0},
	})

	must.Eq(t, StatusConflict, result.Status)
}

func Test_Compare_negative(t *testing.T) {
	v := NewValidator()
	result := v.Compare("System CPU Time", []Source{
		{Name: "a", Value: -1.0},
		{Name: "b", Value: 50.0},
	})

	must.Eq(t, StatusConflict, result.Status)
}

func Test_Compare_single(t *testing.T) {
	v := NewValidator()
	result := v.Compare("User CPU Time", []Source{
		{Name: "cpustats", Value: 42.0},
	})

	must.Eq(t, StatusValid, result.Status)
	must.Eq(t, 42.0, result.Consensus)
}

func Test_Run(t *testing.T) {
	results, err := Run()
	must.NoError(t, err)
	must.Len(t, 2, results)

	for _, r := range results {
		must.Len(t, 2, r.Sources)
	}
}

func Test_ReportJSON(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Metric: "User CPU Time", Consensus: 10.0, Status: StatusValid},
	}
	must.NoError(t, ReportJSON(&buf, results))

	var decoded struct {
		Results []Result `json:"results"`
	}
	must.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	must.Len(t, 1, decoded.Results)
	must.Eq(t, "User CPU Time", decoded.Results[0].Metric)
}

func Test_Report(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, []Result{
		{Metric: "User CPU Time", Consensus: 10.0, Status: StatusValid,
			Sources: []Source{{Name: "cpustats", Value: 10.0, Unit: "s"}}},
	})

	out := buf.String()
	must.True(t, strings.Contains(out, "User CPU Time"))
	must.True(t, strings.Contains(out, "VALID"))
}
