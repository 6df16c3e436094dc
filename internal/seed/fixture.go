package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFixture wraps every validation failure reported by Validate.
var ErrInvalidFixture = errors.New("invalid fixture")

// Fixture is the full content of a seed file.
type Fixture struct {
	Users     []User     `yaml:"users"`
	Questions []Question `yaml:"questions"`
	Replies   []Reply    `yaml:"replies"`
	Follows   []Follow   `yaml:"question_follows"`
	Likes     []Like     `yaml:"question_likes"`
}

// User is a users row.
type User struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"fname"`
	LastName  string `yaml:"lname"`
}

// Question is a questions row.
type Question struct {
	ID       int64  `yaml:"id"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	AuthorID int64  `yaml:"author_id"`
}

// Reply is a replies row. Omit parent_id for a top-level reply.
type Reply struct {
	ID         int64  `yaml:"id"`
	QuestionID int64  `yaml:"question_id"`
	ParentID   *int64 `yaml:"parent_id"`
	AuthorID   int64  `yaml:"author_id"`
	Body       string `yaml:"body"`
}

// Follow is a question_follows row.
type Follow struct {
	ID         int64 `yaml:"id"`
	UserID     int64 `yaml:"user_id"`
	QuestionID int64 `yaml:"question_id"`
}

// Like is a question_likes row.
type Like struct {
	ID         int64 `yaml:"id"`
	UserID     int64 `yaml:"user_id"`
	QuestionID int64 `yaml:"question_id"`
}

// Load reads and parses a fixture file. It does not validate.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes fixture YAML. Unknown keys are rejected.
func Parse(data []byte) (*Fixture, error) {
	var fx Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &fx, nil
}
