package startscript_test

import (
	"strings"
	"testing"

	"srvmaker/internal/expand"
	"srvmaker/internal/startscript"
	"srvmaker/internal/testsupport"
)

func TestBuildOrdersDBPartsThenAuth(t *testing.T) {
	model := testsupport.NewTopology(t,
		testsupport.WithAuthPorts(2),
		testsupport.WithCommonMaps([]int64{101, 102}, []int64{201}),
		testsupport.WithChannel(5),
	)

	got := startscript.Build(expand.Expand(model), startscript.Options{ServerRoot: "/home/Test", SettleSeconds: 3})
	want := `#!/bin/sh
cd /home/Test/db && ./db_test
sleep 3
cd /home/Test/channel5/part1 && ./game5_1
cd /home/Test/channel5/part2 && ./game5_2
cd /home/Test/auth/1/ && ./auth1
cd /home/Test/auth/2/ && ./auth2
cd ../..
`
	if got != want {
		t.Fatalf("script mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildUsesRenameForEveryPart(t *testing.T) {
	model := testsupport.NewTopology(t,
		testsupport.WithAuthPorts(0),
		testsupport.WithCommonMaps([]int64{1}, []int64{2}),
		testsupport.WithRenamedChannel(9, "game99"),
	)

	got := startscript.Build(expand.Expand(model), startscript.Options{ServerRoot: "/srv/Test/", SettleSeconds: 0})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	want := []string{
		"#!/bin/sh",
		"cd /srv/Test/db && ./db_test",
		"sleep 0",
		"cd /srv/Test/game99/part1 && ./game99",
		"cd /srv/Test/game99/part2 && ./game99",
		"cd ../..",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	model := testsupport.NewTopology(t,
		testsupport.WithCommonMaps([]int64{1}),
		testsupport.WithChannel(1),
		testsupport.WithOverrideChannel(2),
		testsupport.WithChannel(3),
	)
	opts := startscript.Options{ServerRoot: "/home/Test", SettleSeconds: 3}

	first := startscript.Build(expand.Expand(model), opts)
	second := startscript.Build(expand.Expand(model), opts)
	if first != second {
		t.Fatalf("expected identical scripts:\n%s\n---\n%s", first, second)
	}
	if strings.Contains(first, "channel2") {
		t.Fatalf("channel without parts must not launch anything:\n%s", first)
	}
}
