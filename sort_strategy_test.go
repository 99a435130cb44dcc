package main

import (
	"reflect"
	"testing"
)

func paths(names ...string) []ImagePath {
	result := make([]ImagePath, len(names))
	for i, n := range names {
		result[i] = ImagePath{Path: n}
	}
	return result
}

func pathsToStrings(images []ImagePath) []string {
	result := make([]string, len(images))
	for i, img := range images {
		result[i] = img.Path
	}
	return result
}

func TestSortStrategies(t *testing.T) {
	input := []string{"test/01.png", "test/04.zip", "test/08.png", "test/09.png", "test/2.png", "test/10.png"}

	tests := []struct {
		method   int
		name     string
		expected []string
	}{
		{SortNatural, "Natural", []string{"test/01.png", "test/2.png", "test/04.zip", "test/08.png", "test/09.png", "test/10.png"}},
		{SortSimple, "Simple", []string{"test/01.png", "test/04.zip", "test/08.png", "test/09.png", "test/10.png", "test/2.png"}},
		{SortEntryOrder, "Entry Order", input},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := GetSortStrategy(tt.method)
			if strategy.Name() != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, strategy.Name())
			}
			if strategy.ID() != tt.method {
				t.Errorf("Expected ID %d, got %d", tt.method, strategy.ID())
			}

			in := paths(input...)
			original := paths(input...)
			result := strategy.Sort(in)
			if got := pathsToStrings(result); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if !reflect.DeepEqual(in, original) {
				t.Error("Input slice was modified")
			}

			if empty := strategy.Sort(nil); empty == nil || len(empty) != 0 {
				t.Errorf("Expected empty non-nil slice, got %#v", empty)
			}
		})
	}
}

func TestGetSortStrategyFallback(t *testing.T) {
	for _, method := range []int{-1, 3, 99} {
		if got := GetSortStrategy(method).ID(); got != SortNatural {
			t.Errorf("method %d: expected natural fallback, got %d", method, got)
		}
	}
}

func TestGetAllSortStrategies(t *testing.T) {
	all := GetAllSortStrategies()
	if len(all) != 3 {
		t.Fatalf("Expected 3 strategies, got %d", len(all))
	}
	for i, s := range all {
		if s.ID() != i {
			t.Errorf("strategy %d has ID %d", i, s.ID())
		}
	}
}

func TestParseSortMethod(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"natural", SortNatural, true},
		{"Simple", SortSimple, true},
		{"entry-order", SortEntryOrder, true},
		{"entryorder", SortEntryOrder, true},
		{"random", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseSortMethod(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseSortMethod(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
