package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadError reports why a spreadsheet could not be turned into a Table.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if errors.Is(e.Err, os.ErrNotExist) {
		return fmt.Sprintf("o arquivo '%s' não foi encontrado", e.Path)
	}
	return fmt.Sprintf("ocorreu um problema ao ler a planilha '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

var (
	errNoHeader    = errors.New("planilha sem linha de cabeçalho")
	errNoWorksheet = errors.New("pasta de trabalho sem planilhas")
)

// Load reads the first worksheet of an Excel workbook, or a CSV file, into a Table.
// Any failure is returned as *LoadError and no partial table is produced.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		records, err = readWorkbook(path)
	case ".csv":
		records, err = readCSV(path)
	default:
		err = fmt.Errorf("formato de planilha não suportado: %q", ext)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: errNoHeader}
	}
	return fromRecords(records), nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoWorksheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
