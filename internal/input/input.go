package input

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// ReadValues - Reads a list of strings from a file.
// Files with extension .json or .jsonc must hold a JSON array of strings (comments and trailing commas allowed),
// any other file is read line by line, skipping blank lines.
//   - fs is the file system to read from
//   - name is the name of the file
func ReadValues(fs afero.Fs, name string) (values []string, err error) {
	content, err := afero.ReadFile(fs, name)
	if err != nil {
		err = errors.Wrap(err, "read values")
		return
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(content), &values)
		if err != nil {
			err = errors.Wrapf(err, "decode values from %s", name)
		}
	default:
		values, err = readLines(content)
	}

	return
}

// readLines - Returns the non blank lines of content with surrounding whitespace removed
func readLines(content []byte) (values []string, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			values = append(values, line)
		}
	}

	if err = scanner.Err(); err != nil {
		err = errors.Wrap(err, "scan values")
	}

	return
}
