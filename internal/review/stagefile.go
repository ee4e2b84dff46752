package review

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"docspell/internal/check"
	"docspell/internal/source"
)

// bump when StagedFile changes shape
const stageFileSchemaVersion uint16 = 1

// ErrStageSchema is returned for staging files written by another version.
var ErrStageSchema = errors.New("unsupported staging file schema")

// StagedFile is the on-disk form of a StagingSet.
type StagedFile struct {
	Schema uint16         `msgpack:"schema"`
	Items  []StagedRecord `msgpack:"items"`
}

type StagedRecord struct {
	Detector     string   `msgpack:"detector"`
	Message      string   `msgpack:"message"`
	Path         string   `msgpack:"path"`
	Start        uint32   `msgpack:"start"`
	End          uint32   `msgpack:"end"`
	Line         uint32   `msgpack:"line"`
	Col          uint32   `msgpack:"col"`
	Word         string   `msgpack:"word"`
	Replacements []string `msgpack:"replacements"`
}

func recordOf(s check.Suggestion) StagedRecord {
	return StagedRecord{
		Detector:     string(s.Detector),
		Message:      s.Message,
		Path:         s.Path,
		Start:        s.Span.Start,
		End:          s.Span.End,
		Line:         s.Pos.Line,
		Col:          s.Pos.Col,
		Word:         s.Word,
		Replacements: s.Replacements,
	}
}

// Suggestion rebuilds the suggestion. File ids and the source line are not
// stored.
func (r StagedRecord) Suggestion() check.Suggestion {
	return check.Suggestion{
		Detector:     check.Detector(r.Detector),
		Message:      r.Message,
		Path:         r.Path,
		Span:         source.Span{Start: r.Start, End: r.End},
		Pos:          source.LineCol{Line: r.Line, Col: r.Col},
		Word:         r.Word,
		Replacements: r.Replacements,
	}
}

// WriteStagingFile stores set at path, replacing the file atomically.
func WriteStagingFile(path string, set *StagingSet) (err error) {
	payload := StagedFile{Schema: stageFileSchemaVersion, Items: make([]StagedRecord, 0, set.Len())}
	for _, s := range set.Items() {
		payload.Items = append(payload.Items, recordOf(s))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, "stage-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(&payload); err != nil {
		return fmt.Errorf("encode staging file: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	// replace atomically
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadStagingFile loads a set written by WriteStagingFile.
func ReadStagingFile(path string) (*StagingSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var payload StagedFile
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if payload.Schema != stageFileSchemaVersion {
		return nil, fmt.Errorf("%s: %w %d", path, ErrStageSchema, payload.Schema)
	}
	set := NewStagingSet()
	for _, r := range payload.Items {
		set.Add(r.Suggestion())
	}
	return set, nil
}

// UpdateStagingFile adds the suggestions of set to those already staged at
// path and writes the union back. A missing file counts as empty.
func UpdateStagingFile(path string, set *StagingSet) (*StagingSet, error) {
	merged, err := ReadStagingFile(path)
	if errors.Is(err, os.ErrNotExist) {
		merged = NewStagingSet()
	} else if err != nil {
		return nil, err
	}
	for _, s := range set.Items() {
		merged.Add(s)
	}
	if err := WriteStagingFile(path, merged); err != nil {
		return nil, err
	}
	return merged, nil
}
