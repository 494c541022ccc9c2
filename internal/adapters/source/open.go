package source

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	csvsource "github.com/bnema/employee-pairs-cli/internal/adapters/source/csv"
	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	tomlsource "github.com/bnema/employee-pairs-cli/internal/adapters/source/toml"
	yamlsource "github.com/bnema/employee-pairs-cli/internal/adapters/source/yaml"
	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ResolveFormat returns the explicit format when set, otherwise the one
// implied by the file extension.
func ResolveFormat(path string, explicit string) (Format, error) {
	value := strings.ToLower(strings.TrimSpace(explicit))
	if value == "" {
		value = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	switch value {
	case "csv":
		return FormatCSV, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q for %s", domain.ErrUnsupportedFormat, value, path)
	}
}

func Open(path string, format Format, parser *dates.Parser, logger *slog.Logger) (ports.RecordSource, error) {
	switch format {
	case FormatCSV:
		return csvsource.NewSource(path, parser, logger), nil
	case FormatTOML:
		return tomlsource.NewSource(path, parser, logger), nil
	case FormatYAML:
		return yamlsource.NewSource(path, parser, logger), nil
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnsupportedFormat, format)
	}
}
