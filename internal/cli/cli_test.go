package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `logging:
  level: error
  format: console
scenarios:
  - name: current loan
    loanType: conventional
    homePrice: 400000
    downPayment: 40000
    interestRate: 7.0
  - name: proposed refi
    loanType: conventional
    transaction: refinance
    loanAmount: 360000
    homePrice: 400000
    interestRate: 6.0
hecm:
  homeValue: 450000
  plf: 52.4
  noteRate: 6.5
  disbursement: tenure
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := New("test")
	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"compare", "amortize", "hecm", "breakeven", "scenario", "serve"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestBreakevenPoints(t *testing.T) {
	out, err := execute(t, "breakeven", "points", "--cost", "4000", "--savings", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "40 months")
}

func TestBreakevenPointsNever(t *testing.T) {
	out, err := execute(t, "breakeven", "points", "--cost", "4000", "--savings", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "never")
}

func TestBreakevenRefinance(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := execute(t, "breakeven", "refinance", "--config", configPath,
		"--current", "current loan", "--proposed", "proposed refi")
	require.NoError(t, err)
	assert.Contains(t, out, "current loan -> proposed refi")
}

func TestCompareRejectsBadFormat(t *testing.T) {
	configPath := writeTestConfig(t)
	_, err := execute(t, "compare", "--config", configPath, "--output-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestCompareMissingConfig(t *testing.T) {
	_, err := execute(t, "compare", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestCompareSavesToStore(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	storeFile := filepath.Join(dir, "store.sqlite")
	withStore := testConfig + "store:\n  path: " + storeFile + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(withStore), 0o600))

	_, err := execute(t, "compare", "--config", configPath, "--save", "--output-format", "csv")
	require.NoError(t, err)

	out, err := execute(t, "scenario", "list", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "current loan")
	assert.Contains(t, out, "proposed refi")
}

func TestScenarioExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	storeFile := filepath.Join(dir, "store.sqlite")
	withStore := testConfig + "store:\n  path: " + storeFile + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(withStore), 0o600))

	_, err := execute(t, "compare", "--config", configPath, "--save", "--output-format", "csv")
	require.NoError(t, err)

	exportPath := filepath.Join(dir, "export.json")
	_, err = execute(t, "scenario", "export", "--config", configPath, "--output", exportPath)
	require.NoError(t, err)

	// Import into a fresh store.
	freshConfig := filepath.Join(dir, "fresh.yaml")
	freshStore := filepath.Join(dir, "fresh.sqlite")
	require.NoError(t, os.WriteFile(freshConfig, []byte(testConfig+"store:\n  path: "+freshStore+"\n"), 0o600))

	out, err := execute(t, "scenario", "import", "--config", freshConfig, exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 scenarios")

	out, err = execute(t, "scenario", "list", "--config", freshConfig)
	require.NoError(t, err)
	assert.Contains(t, out, "current loan")
}

func TestSelectScenario(t *testing.T) {
	configPath := writeTestConfig(t)
	rc := &RootConfig{ConfigPath: configPath}
	conf, logger, err := rc.Load()
	require.NoError(t, err)
	defer func() {
		_ = logger.Sync()
	}()

	first, err := selectScenario(conf, "")
	require.NoError(t, err)
	assert.Equal(t, "current loan", first.Name)

	named, err := selectScenario(conf, "proposed refi")
	require.NoError(t, err)
	assert.Equal(t, "proposed refi", named.Name)

	_, err = selectScenario(conf, "missing")
	require.Error(t, err)
}
