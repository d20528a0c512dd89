package database

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/tabula/internal/models"
)

var (
	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// words, an optional (n) or (n,m) size, then optional constraint words:
	// INTEGER, VARCHAR(20), DECIMAL(10, 2), INTEGER PRIMARY KEY, TEXT NOT NULL
	columnTypePattern = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*( ?\(\d+( ?, ?\d+)?\))?( [A-Za-z]+)*$`)
)

// ValidateIdentifier checks that name can be interpolated into SQL as an identifier
func ValidateIdentifier(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", models.ErrInvalidIdentifier, name)
	}
	return nil
}

// ValidateColumnType checks a declared column type against the accepted grammar
func ValidateColumnType(typ string) error {
	if !columnTypePattern.MatchString(strings.TrimSpace(typ)) {
		return fmt.Errorf("%w: %q", models.ErrInvalidColumnType, typ)
	}
	return nil
}

// ValidateColumnDefs validates every definition and rejects duplicate names
func ValidateColumnDefs(defs []models.ColumnDef) error {
	if len(defs) == 0 {
		return models.ErrNoColumns
	}
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if err := ValidateIdentifier(d.Name); err != nil {
			return err
		}
		if err := ValidateColumnType(d.Type); err != nil {
			return err
		}
		key := strings.ToLower(d.Name)
		if seen[key] {
			return fmt.Errorf("%w: duplicate column %q", models.ErrInvalidIdentifier, d.Name)
		}
		seen[key] = true
	}
	return nil
}

// ValidateClause rejects empty fragments and fragments carrying a second statement.
// Values must be passed as ? arguments, not spliced into the fragment.
func ValidateClause(clause string) error {
	if strings.TrimSpace(clause) == "" {
		return fmt.Errorf("%w: clause is empty", models.ErrUnsafeClause)
	}
	if strings.Contains(clause, ";") {
		return fmt.Errorf("%w: %q contains ';'", models.ErrUnsafeClause, clause)
	}
	if strings.Contains(clause, "--") || strings.Contains(clause, "/*") {
		return fmt.Errorf("%w: %q contains a comment", models.ErrUnsafeClause, clause)
	}
	return nil
}

// QuoteIdent quotes an identifier that already passed ValidateIdentifier
func QuoteIdent(name string) string {
	return `"` + name + `"`
}

// ParseColumnDefs splits a "name TYPE, name TYPE" fragment into definitions.
// Commas inside parentheses belong to the type, as in DECIMAL(10,2).
func ParseColumnDefs(fragment string) ([]models.ColumnDef, error) {
	var parts []string
	depth, start := 0, 0
	for i, r := range fragment {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, fragment[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, fragment[start:])

	var defs []models.ColumnDef
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		fields := strings.Fields(p)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: column %q has no type", models.ErrInvalidColumnType, p)
		}
		defs = append(defs, models.ColumnDef{
			Name: fields[0],
			Type: strings.Join(fields[1:], " "),
		})
	}

	if err := ValidateColumnDefs(defs); err != nil {
		return nil, err
	}
	return defs, nil
}
