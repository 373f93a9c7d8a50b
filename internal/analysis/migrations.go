package analysis

import "fmt"

// Migration moves a document's tokens from one tokenizer version to the next.
// Apply is pure: it derives tokens from the stored content text only.
type Migration struct {
	From  int
	To    int
	Apply func(contentText string) []string
}

// migrations holds one step per version transition, in order.
var migrations = []Migration{
	{
		From:  VersionLengthOnly,
		To:    VersionStopwords,
		Apply: func(text string) []string { return tokenize(text, true) },
	},
}

// MigrationPath returns the steps needed to bring a document at version from
// up to CurrentVersion. Versions below the first known version (including 0,
// for documents written before versioning) start from a full retokenisation.
// A document already current needs no steps.
func MigrationPath(from int) ([]Migration, error) {
	if from > CurrentVersion {
		return nil, fmt.Errorf("tokenizer version %d is newer than supported version %d", from, CurrentVersion)
	}
	if from == CurrentVersion {
		return nil, nil
	}

	if from < VersionLengthOnly {
		initial := Migration{
			From:  from,
			To:    VersionLengthOnly,
			Apply: func(text string) []string { return tokenize(text, false) },
		}
		rest, err := MigrationPath(VersionLengthOnly)
		if err != nil {
			return nil, err
		}
		return append([]Migration{initial}, rest...), nil
	}

	var path []Migration
	version := from
	for _, m := range migrations {
		if m.From == version {
			path = append(path, m)
			version = m.To
		}
	}
	if version != CurrentVersion {
		return nil, fmt.Errorf("no migration path from tokenizer version %d", from)
	}
	return path, nil
}
