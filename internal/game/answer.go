package game

import (
	"slices"
	"strings"
)

// Answers must be phrased as a question: "what is X" or "who is X".
var answerLeads = []string{"what", "who"}

// Tokenize splits a line into whitespace separated tokens.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// ParseAnswer extracts the candidate answer from a line of the form
// "what is X ..." or "who is X ...". Only the word after "is" is returned;
// anything after it is ignored. Matching of "what", "who" and "is" is case
// sensitive.
func ParseAnswer(line string) (string, error) {
	tokens := Tokenize(line)
	if len(tokens) < 3 || !slices.Contains(answerLeads, tokens[0]) || tokens[1] != "is" {
		return "", reject(ErrAnswerFormat, `Invalid format. Your answer must start with "what is" or "who is".`)
	}
	return tokens[2], nil
}

