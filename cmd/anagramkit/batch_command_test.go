package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"anagramkit/internal/testsupport"
)

func TestBatchCommandFromFile(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "pairs.tsv")
	testsupport.WriteLines(t, input,
		"# pairs",
		"listen\tsilent",
		"hello\tworld",
		"alone",
		"",
		"Dormitory,Dirty room",
	)

	out, _, err := runCLI(t, env.configPath, "", "batch", input)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	requireContains(t, out, "Dirty room")
	requireContains(t, out, "4 pairs checked, 2 anagrams")

	out, _, err = runCLI(t, env.configPath, "", "batch", "--only-matches", input)
	if err != nil {
		t.Fatalf("batch --only-matches: %v", err)
	}
	requireNotContains(t, out, "world")
	requireContains(t, out, "4 pairs checked, 2 anagrams")
}

func TestBatchCommandJSONFromStdin(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "evil\tvile\nsingle\n", "--json", "batch")
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	var got batchOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Total != 2 || got.Matched != 1 || len(got.Results) != 2 {
		t.Fatalf("unexpected batch output %+v", got)
	}
	if got.Results[0].Line != 1 || !got.Results[0].Anagrams || got.Results[0].Signature != "eilv" {
		t.Fatalf("unexpected first result %+v", got.Results[0])
	}
	if got.Results[1].Right != nil || got.Results[1].Anagrams {
		t.Fatalf("expected absent right side to fail, got %+v", got.Results[1])
	}
}

func TestBatchCommandMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "", "batch", filepath.Join(env.baseDir, "missing.tsv"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}
