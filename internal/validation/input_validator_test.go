package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "vendas.csv")
	require.NoError(t, os.WriteFile(good, []byte("id_da_compra,produto\n"), 0644))

	empty := filepath.Join(dir, "vazio.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	wrongExt := filepath.Join(dir, "vendas.json")
	require.NoError(t, os.WriteFile(wrongExt, []byte("{}"), 0644))

	v := NewInputValidator(nil)

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "valid file", path: good},
		{name: "missing file", path: filepath.Join(dir, "nope.csv"), wantErr: "does not exist"},
		{name: "directory", path: dir, wantErr: "directory"},
		{name: "empty file", path: empty, wantErr: "empty"},
		{name: "unsupported format", path: wrongExt, wantErr: "unsupported input format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInputFile(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
