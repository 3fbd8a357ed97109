package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/svcreport/internal/logger"
)

func writeTables(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for _, table := range Tables {
		content, ok := files[table.File]
		if !ok {
			content = ""
		}
		if err := os.WriteFile(filepath.Join(dir, table.File), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to create %s: %v", table.File, err)
		}
	}
	return dir
}

func TestLoaderLoad(t *testing.T) {
	dir := writeTables(t, map[string]string{
		"services.csv": "id,host,addr,transport,port,service,chain\n" +
			"S1,h1,10.0.0.1,tcp,443,https,C1\n" +
			"S2,h2,10.0.0.2,tcp,22,ssh,\n",
		"certs.csv": "chain,depth,subject,issuer,nvb,nva\n" +
			"C1,0,CN=h1,CN=ca,2024-01-01,2025-01-01\n" +
			"C1,1,CN=ca,CN=ca,2020-01-01,2030-01-01\n",
		"sans.csv": "chain,depth,subject,san\n" +
			"C1,0,CN=h1,h1.example.com\n",
		"comp.csv":    "id,name,version\nK1,nginx,2.0\n",
		"compsvc.csv": "comp,svc\nK1,S1\n",
	})

	inv, err := NewLoader(dir, logger.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := map[string]int{"services": 2, "certs": 2, "sans": 1, "comp": 1, "compsvc": 1}
	for name, n := range want {
		if got := inv.Counts()[name]; got != n {
			t.Errorf("Counts()[%s] = %v, want %v", name, got, n)
		}
	}

	if inv.Services[0].ChainID != "C1" || inv.Services[1].ChainID != "" {
		t.Errorf("chain ids = %q, %q", inv.Services[0].ChainID, inv.Services[1].ChainID)
	}
	if inv.Chains[1].Level != 1 || inv.Chains[1].Depth != "1" {
		t.Errorf("chain entry depth = %q/%d, want 1/1", inv.Chains[1].Depth, inv.Chains[1].Level)
	}
	if inv.Sans[0].Value != "h1.example.com" {
		t.Errorf("san value = %q", inv.Sans[0].Value)
	}
}

func TestLoaderLoadHeaderOnlyAndEmpty(t *testing.T) {
	dir := writeTables(t, map[string]string{
		"services.csv": "id,host,addr,transport,port,service,chain\n",
	})

	inv, err := NewLoader(dir, logger.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for name, n := range inv.Counts() {
		if n != 0 {
			t.Errorf("Counts()[%s] = %v, want 0", name, n)
		}
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	dir := writeTables(t, nil)
	if err := os.Remove(filepath.Join(dir, "comp.csv")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	_, err := NewLoader(dir, logger.NewNop()).Load()
	if !errors.Is(err, ErrOpen) {
		t.Errorf("Load() error = %v, want ErrOpen", err)
	}
}

func TestLoaderLoadShortRow(t *testing.T) {
	dir := writeTables(t, map[string]string{
		"compsvc.csv": "comp,svc\nK1,S1\nK2\n",
	})

	_, err := NewLoader(dir, logger.NewNop()).Load()

	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("Load() error = %v, want *RowError", err)
	}
	if rowErr.File != "compsvc.csv" || rowErr.Line != 3 {
		t.Errorf("RowError at %s:%d, want compsvc.csv:3", rowErr.File, rowErr.Line)
	}
	if !errors.Is(err, ErrShortRow) {
		t.Errorf("Load() error = %v, want ErrShortRow", err)
	}
}

func TestReadTableQuotedFields(t *testing.T) {
	dir := writeTables(t, map[string]string{
		"certs.csv": "chain,depth,subject,issuer,nvb,nva\n" +
			"C1,0,\"CN=h1,O=Example\",\"CN=ca,O=Example\",a,b\n",
	})

	records, err := NewLoader(dir, logger.NewNop()).ReadTable(CertsTable)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("ReadTable() returned %d records, want 1", len(records))
	}
	if got := records[0].Fields[2]; got != "CN=h1,O=Example" {
		t.Errorf("subject = %q, want CN=h1,O=Example", got)
	}
	if records[0].Line != 2 {
		t.Errorf("Line = %d, want 2", records[0].Line)
	}
}

func TestReadTableMalformedCSV(t *testing.T) {
	dir := writeTables(t, map[string]string{
		"sans.csv": "chain,depth,subject,san\nC1,0,\"unterminated,x\n",
	})

	_, err := NewLoader(dir, logger.NewNop()).ReadTable(SansTable)
	if err == nil {
		t.Error("ReadTable() with malformed quoting should return error")
	}
}
