package output

import (
	"fmt"
	"io"
	"os"

	"github.com/swingpay/fifo-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// RenderReport formats results with the named formatter and writes them to w.
func RenderReport(w io.Writer, results *domain.JobComparison, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes a report file into dir. Format "all" writes every
// registered formatter. It returns the files written.
func GenerateReport(results *domain.JobComparison, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		for _, name := range AvailableFormatterNames() {
			formatters = append(formatters, GetFormatterByName(name))
		}
	} else {
		f, err := LookupFormatter(format)
		if err != nil {
			return nil, err
		}
		formatters = append(formatters, f)
	}

	var files []string
	for _, f := range formatters {
		name, err := WriteFormatted(f, results, dir)
		if err != nil {
			return files, fmt.Errorf("%s formatter: %w", f.Name(), err)
		}
		files = append(files, name)
	}
	return files, nil
}

// SaveConfiguration writes a comparison file that InputParser can load.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
