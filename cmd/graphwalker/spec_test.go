package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpec_NameOnly(t *testing.T) {
	s := parseSpec("Coverage")
	assert.Equal(t, "Coverage", s.Name)
	assert.Empty(t, s.Args)
	assert.Empty(t, s.Kwargs)
}

func TestParseSpec_PositionalAndKeywordArgs(t *testing.T) {
	s := parseSpec("Coverage:edges=100,vertices=50,verbose")
	assert.Equal(t, "Coverage", s.Name)
	assert.Equal(t, []string{"verbose"}, s.Args)
	assert.Equal(t, map[string]string{"edges": "100", "vertices": "50"}, s.Kwargs)
}

func TestParseSpec_DottedNameUsesLastSegment(t *testing.T) {
	s := parseSpec("mypackage.MyActor:1,2")
	assert.Equal(t, "MyActor", s.Name)
	assert.Equal(t, []string{"1", "2"}, s.Args)
}

func TestParseSpec_TrailingColonIsEmptyRest(t *testing.T) {
	s := parseSpec("Random:")
	assert.Equal(t, "Random", s.Name)
	assert.Empty(t, s.Args)
	assert.Empty(t, s.Kwargs)
}

func TestSplitPositionals_LastArgRecognizedAsGraphFileStaysAGraph(t *testing.T) {
	graphs, actor := splitPositionals([]string{"a.dot", "b.gml"})
	assert.Equal(t, []string{"a.dot", "b.gml"}, graphs)
	assert.Empty(t, actor)
}

func TestSplitPositionals_UnrecognizedLastArgIsActorSpec(t *testing.T) {
	graphs, actor := splitPositionals([]string{"a.dot", "mypackage.MyActor"})
	assert.Equal(t, []string{"a.dot"}, graphs)
	assert.Equal(t, "mypackage.MyActor", actor)
}

func TestSplitPositionals_Empty(t *testing.T) {
	graphs, actor := splitPositionals(nil)
	assert.Empty(t, graphs)
	assert.Empty(t, actor)
}
