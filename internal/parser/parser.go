package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/errors"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/models"
)

// Parse reads a single JSON document from reader into a models.Document.
// Numbers are kept as json.Number and object key order is preserved.
func Parse(reader io.Reader) (models.Document, error) {
	dec := json.NewDecoder(reader)
	dec.UseNumber()

	root, err := models.DecodeValue(dec)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			// Decode of an empty or whitespace-only stream hits EOF before
			// any value is produced.
			return models.Document{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return models.Document{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		return models.Document{}, errors.NewParsingError("failed to decode JSON", err)
	}

	// Anything after the first value besides trailing whitespace means more
	// than one JSON document on the stream.
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return models.Document{}, errors.NewParsingError("invalid trailing data after first JSON value", err)
		}
		return models.Document{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}

	doc := models.Document{Root: root}
	if _, ok := root.(models.JSONArray); ok {
		doc.RootIsArray = true
	}
	return doc, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Document, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Document{}, errors.NewInputError("input string contains no JSON", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Document{}, errors.NewInputError("no file path given", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Document{}, errors.NewInputError(
				fmt.Sprintf("no such file '%s'", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("could not open '%s'", filePath),
			err,
		)
	}
	defer func() { _ = file.Close() }()

	// Reject empty files before handing the reader to the decoder, so the
	// caller sees a file-level error rather than a parse error.
	stat, err := file.Stat()
	if err != nil {
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("could not stat '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("'%s' has no content", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
