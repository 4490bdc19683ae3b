// Command wordprobe places words into a fixed-size probed hash table and, for
// each word entered interactively, reports a different word reachable by that
// word's hash-derived stride.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/homier/wordprobe"
)

const prompt = "Enter your input text or words (space-separated for multiple): "

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "wordprobe:", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer, args []string) error {
	flags := flag.NewFlagSet("wordprobe", flag.ContinueOnError)
	capacity := flags.Int("capacity", 9999, "number of slots in the table")
	file := flags.StringP("file", "f", "", "text file to load additional words from")
	maxChars := flags.Int("max-chars", 99999, "read at most this many characters from --file")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	table, err := wordprobe.New(*capacity)
	if err != nil {
		return err
	}

	line, err := readLine(stdin, stdout)
	if err != nil {
		return err
	}

	words := splitWords(line)
	if err := table.PutAll(words); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Inserted %d words from input.\n", len(words))

	if *file != "" {
		text, err := readCapped(*file, *maxChars)
		if err != nil {
			return err
		}

		fileWords := splitWords(text)
		if err := table.PutAll(fileWords); err != nil {
			return err
		}

		fmt.Fprintf(stdout, "Inserted %d words from %s (duplicates ignored).\n", len(fileWords), *file)
	}

	fmt.Fprintf(stdout, "\nDifferent words from input via hash:\n")

	for _, word := range words {
		printDifferent(stdout, table, word)
	}

	return nil
}

// readLine prompts via liner when running on a real terminal and falls back
// to a plain buffered read otherwise, so the command stays pipeable.
func readLine(stdin io.Reader, stdout io.Writer) (string, error) {
	if f, ok := stdin.(*os.File); ok && f == os.Stdin && liner.TerminalSupported() {
		l := liner.NewLiner()
		defer l.Close()

		l.SetCtrlCAborts(true)

		line, err := l.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return "", nil
			}

			return "", fmt.Errorf("reading input: %w", err)
		}

		return line, nil
	}

	fmt.Fprint(stdout, prompt)

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return line, nil
}

func printDifferent(w io.Writer, table *wordprobe.Table, word string) {
	m, err := table.FindDifferent(word)

	switch {
	case errors.Is(err, wordprobe.ErrNotFound):
		fmt.Fprintf(w, "%q not in table (skipped).\n", word)
	case errors.Is(err, wordprobe.ErrNoDifferentKey):
		fmt.Fprintf(w, "No different word found for %q (table may be sparse or isolated).\n", word)
	default:
		fmt.Fprintf(w, "For %q (hash %d, step %d), different word: %q (at slot %d)\n",
			word, table.PrimaryIndex(word), table.Step(word), m.Key, m.Slot)
	}
}
