package spellcheck

import "github.com/sergi/go-diff/diffmatchpatch"

// editAnnotations summarizes what a run changed as equal/insert/delete runs
// between the source text and the outcome. Returns nil when nothing changed.
func editAnnotations(original, corrected string) []Edit {
	if corrected == "" || corrected == original {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, corrected, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	edits := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		op := "equal"
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = "insert"
		case diffmatchpatch.DiffDelete:
			op = "delete"
		}
		edits = append(edits, Edit{Op: op, Text: d.Text})
	}
	return edits
}
