package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/multicalc/loancalc/internal/domain"
)

// GenerateReport renders report in the named format (or every file format for "all")
// into dir and returns the written paths.
func GenerateReport(report *domain.LoanReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range []string{"console-lite", "csv", "detailed-csv", "json", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir, FileExtension(name))
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, report, dir, FileExtension(format))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveRequest writes a loan request as YAML, the format InputParser reads back.
func SaveRequest(req *domain.LoanRequest, filename string) error {
	b, err := yaml.Marshal(req)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
