package assessment

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/nsip/otf-eyda/internal/util"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// the document is normally wrapped in this root object
const frameworkPath = "assessment_framework"

//
// Load reads the assessment document from source, which is
// either a local file path or an http(s) url.
// The document is fetched once; there is no retry.
//
func Load(source string) (*Document, error) {

	defer util.TimeTrack(time.Now(), "assessment load")

	if source == "" {
		return nil, errors.New("no assessment document source supplied")
	}

	var data []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		headers := map[string]string{
			"Accept": "application/json",
		}
		data, err = util.Fetch(http.MethodGet, source, headers, nil)
	} else {
		data, err = ioutil.ReadFile(source)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read assessment document %s", source)
	}

	return Parse(data)
}

//
// Parse decodes a document, accepting either the
// {"assessment_framework": {...}} wrapper or a bare
// {sections, scoring} object.
// Rejects documents whose question ids are not unique, and
// legends that are empty or hold levels outside 1..MaxValue.
//
func Parse(data []byte) (*Document, error) {

	if !gjson.ValidBytes(data) {
		return nil, errors.New("assessment document is not valid json")
	}

	root := gjson.ParseBytes(data)
	if fw := root.Get(frameworkPath); fw.Exists() {
		root = fw
	}
	if !root.IsObject() {
		return nil, errors.New("assessment document root is not an object")
	}
	if !root.Get("sections").IsArray() {
		return nil, errors.New("assessment document has no sections array")
	}
	if !root.Get("scoring").IsObject() {
		return nil, errors.New("assessment document has no scoring legend object")
	}

	doc := &Document{}
	if err := json.Unmarshal([]byte(root.Raw), doc); err != nil {
		return nil, errors.Wrap(err, "cannot decode assessment document")
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

//
// Validate checks the legend (non-empty, labelled, unique labels,
// values within 1..MaxValue) and that question ids are unique.
//
func (d *Document) Validate() error {
	if len(d.Scoring) == 0 {
		return errors.New("assessment scoring legend is empty")
	}
	labels := make(map[string]string, len(d.Scoring))
	for k, lvl := range d.Scoring {
		if lvl.Label == "" {
			return errors.Errorf("scoring level %s has no label", k)
		}
		if lvl.Value < 1 || lvl.Value > MaxValue {
			return errors.Errorf("scoring level %s value %d outside 1..%d", k, lvl.Value, MaxValue)
		}
		if other, ok := labels[lvl.Label]; ok {
			return errors.Errorf("scoring label %q used by both %s and %s", lvl.Label, other, k)
		}
		labels[lvl.Label] = k
	}

	seen := make(map[int]string)
	for _, s := range d.Sections {
		for _, sub := range s.Subsections {
			for _, q := range sub.Questions {
				if where, ok := seen[q.ID]; ok {
					return errors.Errorf("duplicate question id %d in %s/%s, first seen in %s", q.ID, s.Title, sub.Title, where)
				}
				seen[q.ID] = s.Title + "/" + sub.Title
			}
		}
	}
	return nil
}
