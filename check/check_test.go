package check

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnolang/ndcheck/internal"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProofChecker struct {
	mock.Mock
}

func (m *mockProofChecker) Check(doc *proof.Document) types.Report {
	args := m.Called(doc)
	return args.Get(0).(types.Report)
}

func (m *mockProofChecker) IgnoreRule(rule string) error {
	args := m.Called(rule)
	return args.Error(0)
}

func validReport() types.Report {
	return types.Report{Valid: true, Conclusion: types.Response{Valid: true}}
}

func copyTestdata(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))
		paths = append(paths, path)
	}
	return paths
}

func TestProcessFile(t *testing.T) {
	t.Parallel()

	mockEngine := new(mockProofChecker)
	mockEngine.On("Check", mock.AnythingOfType("*proof.Document")).Return(validReport())

	path := filepath.Join("testdata", "conjunction.proof.yaml")
	result, err := ProcessFile(mockEngine, path)
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.NotEmpty(t, result.ID.String())
	assert.True(t, result.Report.Valid)
	require.NotNil(t, result.Document)
	assert.Len(t, result.Document.Lines, 2)
	mockEngine.AssertExpectations(t)

	_, err = ProcessFile(mockEngine, filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestProcessPath(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop()
	ctx := context.Background()

	tempDir := t.TempDir()
	paths := copyTestdata(t, tempDir, "conjunction.proof.yaml", "existential.proof.json")
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".ndcheck.yaml"), []byte("name: x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("skip"), 0o644))

	mockEngine := new(mockProofChecker)
	mockEngine.On("Check", mock.AnythingOfType("*proof.Document")).Return(validReport()).Times(2)

	results, err := ProcessPath(ctx, logger, mockEngine, tempDir, ProcessFile)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, paths[0], results[0].Path)
	assert.Equal(t, paths[1], results[1].Path)
	assert.NotEqual(t, results[0].ID, results[1].ID)
	mockEngine.AssertExpectations(t)
}

func TestProcessPathReportsBrokenFiles(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	copyTestdata(t, tempDir, "conjunction.proof.yaml")
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "broken.yaml"), []byte("lines: [\n"), 0o644))

	mockEngine := new(mockProofChecker)
	mockEngine.On("Check", mock.Anything).Return(validReport())

	results, err := ProcessPath(context.Background(), zap.NewNop(), mockEngine, tempDir, ProcessFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
	require.Len(t, results, 1)
	assert.Equal(t, filepath.Join(tempDir, "conjunction.proof.yaml"), results[0].Path)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tempDir := t.TempDir()
	paths := copyTestdata(t, tempDir, "conjunction.proof.yaml", "invalid.proof.yaml")

	mockEngine := new(mockProofChecker)
	mockEngine.On("Check", mock.Anything).Return(validReport()).Times(2)

	results, err := ProcessFiles(ctx, zap.NewNop(), mockEngine, paths, ProcessFile)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, paths[0], results[0].Path)
	assert.Equal(t, paths[1], results[1].Path)
	mockEngine.AssertExpectations(t)

	_, err = ProcessFiles(ctx, nil, mockEngine, []string{filepath.Join(tempDir, "nope")}, ProcessFile)
	assert.Error(t, err)
}

func TestProcessPathContextCancellation(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	copyTestdata(t, tempDir, "conjunction.proof.yaml", "existential.proof.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockEngine := new(mockProofChecker)
	mockEngine.On("Check", mock.Anything).Return(validReport()).Maybe()

	_, err := ProcessPath(ctx, nil, mockEngine, tempDir, ProcessFile)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCached(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	path := copyTestdata(t, tempDir, "conjunction.proof.yaml")[0]
	cache, err := internal.NewCache(filepath.Join(tempDir, "cache"), "default")
	require.NoError(t, err)

	calls := 0
	processor := Cached(cache, zap.NewNop(), func(engine ProofChecker, p string) (Result, error) {
		calls++
		return ProcessFile(engine, p)
	})

	mockEngine := new(mockProofChecker)
	mockEngine.On("Check", mock.Anything).Return(validReport()).Once()

	first, err := processor(mockEngine, path)
	require.NoError(t, err)
	second, err := processor(mockEngine, path)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Report, second.Report)
	assert.NotNil(t, second.Document)
	mockEngine.AssertExpectations(t)

	failing := Cached(cache, nil, func(ProofChecker, string) (Result, error) {
		return Result{}, errors.New("boom")
	})
	_, err = failing(mockEngine, filepath.Join(tempDir, "other.yaml"))
	assert.EqualError(t, err, "boom")
}

func TestEndToEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file   string
		strict bool
		valid  bool
	}{
		{"conjunction.proof.yaml", false, true},
		{"existential.proof.json", false, true},
		{"existential.proof.json", true, true},
		{"generalization.proof.yaml", false, true},
		{"generalization.proof.yaml", true, false},
		{"invalid.proof.yaml", false, false},
	}

	for _, tt := range tests {
		engine, err := NewFromConfig(Config{StrictNames: tt.strict})
		require.NoError(t, err)

		result, err := ProcessFile(engine, filepath.Join("testdata", tt.file))
		require.NoError(t, err)
		assert.Equal(t, tt.valid, result.Report.Valid, "%s (strict=%v): %+v", tt.file, tt.strict, result.Report.Failures())
	}

	engine, err := NewFromConfig(DefaultConfig())
	require.NoError(t, err)
	result, err := ProcessFile(engine, filepath.Join("testdata", "invalid.proof.yaml"))
	require.NoError(t, err)
	failures := result.Report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "3", failures[0].Line)
	assert.Equal(t, types.KindFormulaMismatch, failures[0].Kind)
}
