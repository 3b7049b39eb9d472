package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/itsatony/go-htmlattrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testDataJSON     = `{"id": "main", "dataRole": "nav", "hidden": null}`
	testExpectedText = `id="main" data-role="nav"`
	testDataYAML     = "type: checkbox\nchecked: true\nname: agree\n"
	testConfigYAML   = "format:\n  quote: \"'\"\n  separator: \",\"\n"
)

// runCLI executes the CLI with the given args and stdin content
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))
	return path
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "")

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CLIName)
	assert.Contains(t, stdout, CmdNameRender)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "", "unknown")

	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, "unknown")
}

func TestRun_UnknownFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "", CmdNameRender, "--bogus")

	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgUsage)
}

// ==================== render tests ====================

func TestRender_InlineData(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", CmdNameRender, "-d", testDataJSON)

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testExpectedText+FmtNewline, stdout)
}

func TestRender_Stdin(t *testing.T) {
	t.Run("explicit dash", func(t *testing.T) {
		code, stdout, _ := runCLI(t, testDataYAML, CmdNameRender, "-f", InputSourceStdin)
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, `type="checkbox" checked name="agree"`+FmtNewline, stdout)
	})

	t.Run("implicit", func(t *testing.T) {
		code, stdout, _ := runCLI(t, testDataJSON, CmdNameRender)
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, testExpectedText+FmtNewline, stdout)
	})

	t.Run("empty stdin", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "", CmdNameRender, "--"+FlagNewline+"=false")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "", stdout)
	})
}

func TestRender_DataFile(t *testing.T) {
	path := writeTestFile(t, "attrs.yaml", testDataYAML)

	code, stdout, _ := runCLI(t, "", CmdNameRender, "--"+FlagDataFile, path, "--"+FlagShortCircuit)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "checked"+FmtNewline, stdout)
}

func TestRender_PunctuationFlags(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameRender,
		"-d", `{"a": "1", "b": "2"}`,
		"--"+FlagQuote, "'",
		"--"+FlagAssignment, ":",
		"--"+FlagSeparator, ";",
		"--"+FlagNewline+"=false",
	)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, `a:'1';b:'2'`, stdout)
}

func TestRender_Precedence(t *testing.T) {
	configPath := writeTestFile(t, "htmlattrs.yaml", testConfigYAML)
	data := `{"a": "1", "b": "2"}`

	t.Run("config", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "", CmdNameRender, "-d", data, "-c", configPath)
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, `a='1',b='2'`+FmtNewline, stdout)
	})

	t.Run("env over config", func(t *testing.T) {
		t.Setenv(EnvSeparator, " | ")
		code, stdout, _ := runCLI(t, "", CmdNameRender, "-d", data, "-c", configPath)
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, `a='1' | b='2'`+FmtNewline, stdout)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv(EnvSeparator, " | ")
		code, stdout, _ := runCLI(t, "", CmdNameRender, "-d", data, "-c", configPath, "--"+FlagSeparator, " ")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, `a='1' b='2'`+FmtNewline, stdout)
	})
}

func TestRender_TOMLConfig(t *testing.T) {
	configPath := writeTestFile(t, "htmlattrs.toml", "short_circuit = true\n")

	code, stdout, _ := runCLI(t, "", CmdNameRender, "-d", `{"id": "x", "disabled": true, "name": "n"}`, "-c", configPath)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "disabled"+FmtNewline, stdout)
}

func TestRender_EnvFile(t *testing.T) {
	envPath := writeTestFile(t, ".env", EnvQuote+"=\"'\"\n"+EnvSeparator+"=\",\"\n")

	t.Run("supplies defaults", func(t *testing.T) {
		_, preset := os.LookupEnv(EnvQuote)
		require.False(t, preset)

		code, stdout, stderr := runCLI(t, "", CmdNameRender, "-d", `{"a": "1", "b": "2"}`, "--"+FlagEnvFile, envPath)

		require.Equal(t, ExitCodeSuccess, code, stderr)
		assert.Equal(t, `a='1',b='2'`+FmtNewline, stdout)

		_, leaked := os.LookupEnv(EnvQuote)
		assert.False(t, leaked)
		_, leaked = os.LookupEnv(EnvSeparator)
		assert.False(t, leaked)
	})

	t.Run("environment beats dotenv", func(t *testing.T) {
		t.Setenv(EnvSeparator, " | ")

		code, stdout, stderr := runCLI(t, "", CmdNameRender, "-d", `{"a": "1", "b": "2"}`, "--"+FlagEnvFile, envPath)

		require.Equal(t, ExitCodeSuccess, code, stderr)
		assert.Equal(t, `a='1' | b='2'`+FmtNewline, stdout)
	})

	t.Run("later runs unaffected", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "", CmdNameRender, "-d", `{"a": "1", "b": "2"}`)

		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, `a="1" b="2"`+FmtNewline, stdout)
	})
}

func TestRender_AliasCycle(t *testing.T) {
	code, _, stderr := runCLI(t, "", CmdNameRender, "-d", "a: &x [*x]")

	assert.Equal(t, ExitCodeInputError, code)
	assert.Contains(t, stderr, htmlattrs.ErrMsgDocumentAliasCycle)
}

func TestRender_RemoveHelper(t *testing.T) {
	data := `{"data": {"foo": "bar"}}`

	code, stdout, _ := runCLI(t, "", CmdNameRender, "-d", data)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, `data-foo="bar"`+FmtNewline, stdout)

	code, stdout, _ = runCLI(t, "", CmdNameRender, "-d", data, "--"+FlagRemoveHelper, "data")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, `data="map[foo:bar]"`+FmtNewline, stdout)
}

func TestRender_JSONFormat(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameRender, "-d", `{"title": "<b>", "id": "x"}`, "-F", OutputFormatJSON)
	require.Equal(t, ExitCodeSuccess, code)

	var out renderOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, `title="&lt;b&gt;" id="x"`, out.Attributes)
	assert.Equal(t, []string{"title", "id"}, out.Names)
	assert.Contains(t, stdout, "&lt;b&gt;")
}

func TestRender_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.txt")

	code, stdout, _ := runCLI(t, "", CmdNameRender, "-d", testDataJSON, "-o", outPath)
	require.Equal(t, ExitCodeSuccess, code)
	assert.Empty(t, stdout)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, testExpectedText+FmtNewline, string(written))
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{
			name:     "conflicting data sources",
			args:     []string{CmdNameRender, "-d", "{}", "-f", "x.json"},
			code:     ExitCodeUsageError,
			contains: ErrMsgConflictingData,
		},
		{
			name:     "invalid format",
			args:     []string{CmdNameRender, "-d", "{}", "-F", "xml"},
			code:     ExitCodeUsageError,
			contains: ErrMsgInvalidFormat,
		},
		{
			name:     "missing data file",
			args:     []string{CmdNameRender, "-f", filepath.Join(os.TempDir(), "does-not-exist.json")},
			code:     ExitCodeInputError,
			contains: ErrMsgReadFileFailed,
		},
		{
			name:     "document not a mapping",
			args:     []string{CmdNameRender, "-d", "[1, 2]"},
			code:     ExitCodeInputError,
			contains: ErrMsgInvalidData,
		},
		{
			name:     "unsupported config",
			args:     []string{CmdNameRender, "-d", "{}", "-c", "htmlattrs.ini"},
			code:     ExitCodeInputError,
			contains: ErrMsgLoadConfigFailed,
		},
		{
			name:     "missing env file",
			args:     []string{CmdNameRender, "-d", "{}", "--" + FlagEnvFile, filepath.Join(os.TempDir(), "missing.env")},
			code:     ExitCodeInputError,
			contains: ErrMsgLoadEnvFailed,
		},
		{
			name:     "helper failure",
			args:     []string{CmdNameRender, "-d", `{"data": 5}`},
			code:     ExitCodeError,
			contains: ErrMsgFormatFailed,
		},
		{
			name:     "positional args rejected",
			args:     []string{CmdNameRender, "extra"},
			code:     ExitCodeUsageError,
			contains: "extra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.contains)
		})
	}
}

// ==================== version tests ====================

func TestVersion_Text(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameVersion)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CLIName)
	assert.Contains(t, stdout, "Go:")
}

func TestVersion_JSON(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameVersion, "-F", OutputFormatJSON)
	require.Equal(t, ExitCodeSuccess, code)

	var out versionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.NotEmpty(t, out.GoVersion)
}

func TestVersion_InvalidFormat(t *testing.T) {
	code, _, stderr := runCLI(t, "", CmdNameVersion, "-F", "xml")

	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)
}

func TestGetVersionInfo(t *testing.T) {
	t.Run("from versions file", func(t *testing.T) {
		dir := t.TempDir()
		content := "project:\n  version: 1.2.3\ngit:\n  commit: abc123\n  branch: main\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, VersionsFileName), []byte(content), FilePermissions))

		info := getVersionInfo([]string{dir})
		assert.Equal(t, "1.2.3", info.Version)
		assert.Equal(t, "abc123", info.Commit)
		assert.Equal(t, "main", info.Branch)
		assert.Equal(t, VersionUnknown, info.BuildTime)
		assert.Equal(t, runtime.Version(), info.GoVersion)
	})

	t.Run("no versions file", func(t *testing.T) {
		info := getVersionInfo([]string{t.TempDir()})
		assert.Equal(t, VersionUnknown, info.Version)
	})
}
