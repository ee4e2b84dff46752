// Package review walks the user through suggestions one key press at a time
// and collects the accepted ones in a StagingSet.
//
// Each file is reviewed with a Cursor. Moving forward past the last
// suggestion finishes the file, moving backward from the first one stays on
// it. Quitting ends the review of every remaining file.
package review
