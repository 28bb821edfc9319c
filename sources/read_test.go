package sources

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/modes"
)

func newTestScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() bfconfigs.ConfigPaths {
			return nil
		},
		func() bfconfigs.SearchPaths {
			return []string{"testdata/lib"}
		},
		func() Stdin {
			return strings.NewReader(",[.,]")
		},
	)
}

func TestReadFile(t *testing.T) {
	newTestScope(t).Call(func(
		read Read,
	) {
		content, err := read(t.Context(), "testdata/lib/hello.bf")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(content), "++++++++[") {
			t.Fatalf("got %q", content)
		}

		// found through search paths
		content2, err := read(t.Context(), "hello.bf")
		if err != nil {
			t.Fatal(err)
		}
		if string(content2) != string(content) {
			t.Fatal()
		}

		_, err = read(t.Context(), "not-exists.bf")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestReadStdin(t *testing.T) {
	newTestScope(t).Call(func(
		read Read,
	) {
		content, err := read(t.Context(), "-")
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != ",[.,]" {
			t.Fatalf("got %q", content)
		}
	})
}

func TestReadHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/prog.bf" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("+++."))
	}))
	defer server.Close()

	newTestScope(t).Call(func(
		read Read,
	) {
		content, err := read(t.Context(), server.URL+"/prog.bf")
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "+++." {
			t.Fatalf("got %q", content)
		}

		_, err = read(t.Context(), server.URL+"/missing.bf")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestReadTooLarge(t *testing.T) {
	_, err := readLimited(strings.NewReader(strings.Repeat("+", 11)), 10)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v", err)
	}
	content, err := readLimited(strings.NewReader(strings.Repeat("+", 10)), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(content) != 10 {
		t.Fatalf("got %d", len(content))
	}
}
