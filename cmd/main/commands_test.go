package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployees = `[
		{"id": "1", "firstName": "John", "lastName": "Doe", "jobTitle": "Developer"},
		{"id": "2", "firstName": "Jane", "lastName": "Smith", "jobTitle": "Designer"}
	]`
	testContacts = `[
		{"id": "1", "employeeId": "1", "email": "jaakko123@mail.com", "mobile": "040643204390", "address": "Jykintie 43"},
		{"id": "2", "employeeId": "2", "email": "konsta3935@mail.com", "mobile": "0506490664", "address": "Kangasmoisionkatu 8"}
	]`
)

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()

	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/data/"+repository.DefaultEmployeesFile, []byte(testEmployees), 0o644))
	require.NoError(t, afero.WriteFile(memFs, "/data/"+repository.DefaultContactsFile, []byte(testContacts), 0o644))

	return memFs
}

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH",
		"MNEMOSYNE_ENV",
		"MNEMOSYNE_DATA_DIR",
		"MNEMOSYNE_DATA_EMPLOYEES_FILE",
		"MNEMOSYNE_DATA_CONTACTS_FILE",
		"MNEMOSYNE_MONITORING_PORT",
	} {
		t.Setenv(key, "")
	}

	var out, logs bytes.Buffer
	cmd := newRootCommand(fs)
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestEmployeesCommand(t *testing.T) {
	out, err := execute(t, newTestFs(t), "--data-dir", "/data", "employees")
	require.NoError(t, err)

	var employees []models.Employee
	require.NoError(t, json.Unmarshal([]byte(out), &employees))
	assert.Equal(t, []models.Employee{
		{ID: "1", FirstName: "John", LastName: "Doe", JobTitle: "Developer"},
		{ID: "2", FirstName: "Jane", LastName: "Smith", JobTitle: "Designer"},
	}, employees)
}

func TestEmployeesCommand_MissingDocument(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "--data-dir", "/data", "employees")

	require.ErrorIs(t, err, repository.ErrRead)
	assert.Empty(t, out)
}

func TestContactCommand(t *testing.T) {
	out, err := execute(t, newTestFs(t), "--data-dir", "/data", "contact", "2")
	require.NoError(t, err)

	var contact models.ContactInformation
	require.NoError(t, json.Unmarshal([]byte(out), &contact))
	assert.Equal(t, models.ContactInformation{
		ID:         "2",
		EmployeeID: "2",
		Email:      "konsta3935@mail.com",
		Mobile:     "0506490664",
		Address:    "Kangasmoisionkatu 8",
	}, contact)
}

func TestContactCommand_NotFound(t *testing.T) {
	out, err := execute(t, newTestFs(t), "--data-dir", "/data", "contact", "3")

	require.ErrorIs(t, err, errContactNotFound)
	assert.Empty(t, out)
}

func TestContactCommand_RequiresID(t *testing.T) {
	_, err := execute(t, newTestFs(t), "--data-dir", "/data", "contact")

	require.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	t.Run("local logs debug as text", func(t *testing.T) {
		var buf bytes.Buffer

		log := setupLogger(envLocal, &buf)
		log.Debug("debug line")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), `msg="debug line"`)
	})

	t.Run("development logs info as json", func(t *testing.T) {
		var buf bytes.Buffer

		log := setupLogger(envDev, &buf)
		log.Debug("debug line")
		log.Info("info line")

		assert.NotContains(t, buf.String(), "debug line")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info line", entry["msg"])
		assert.Contains(t, entry, "time")
	})

	t.Run("production logs warnings without time", func(t *testing.T) {
		var buf bytes.Buffer

		log := setupLogger(envProd, &buf)
		log.Debug("debug line")
		log.Info("info line")
		log.Warn("warn line")

		assert.NotContains(t, buf.String(), "debug line")
		assert.NotContains(t, buf.String(), "info line")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "warn line", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.NotContains(t, entry, "time")
	})

	t.Run("unknown env logs errors only", func(t *testing.T) {
		var buf bytes.Buffer

		log := setupLogger("unknown", &buf)
		assert.Contains(t, buf.String(), "The env parameter was not specified")

		buf.Reset()
		log.Warn("warn line")
		assert.Empty(t, buf.String())
	})
}
