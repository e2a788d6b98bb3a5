package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTechStack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"commas", "React, Node.js, MySQL", []string{"React", "Node.js", "MySQL"}},
		{"pipes", "React | Spring Boot | Postgres", []string{"React", "Spring Boot", "Postgres"}},
		{"mixed separators", "React,Node|MySQL", []string{"React", "Node", "MySQL"}},
		{"blank tokens dropped", " , React ,, | MySQL | ", []string{"React", "MySQL"}},
		{"duplicates and order kept", "React, MySQL, React", []string{"React", "MySQL", "React"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTechStack(tt.raw))
		})
	}
}

func TestSummarizeTech(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, "Not specified"},
		{"single", []string{"React"}, "React"},
		{"three joined", []string{"React", "Node", "MySQL"}, "React, Node, MySQL"},
		{"overflow collapsed", []string{"React", "Node", "MySQL", "Redis", "Docker"}, "React, Node, MySQL +2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeTech(tt.items))
		})
	}
}

func TestFilterStack(t *testing.T) {
	stack := []string{"React Native", "Spring Boot", "PostgreSQL", "Tailwind CSS"}

	assert.Equal(t, []string{"React Native", "Tailwind CSS"}, FilterStack(stack, FrontendKeywords))
	assert.Equal(t, []string{"Spring Boot"}, FilterStack(stack, BackendKeywords))
	assert.Equal(t, []string{"PostgreSQL"}, FilterStack(stack, DatabaseKeywords))
	assert.Empty(t, FilterStack(stack, SecurityKeywords))
}

func TestFilterStackCaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"REACT", "react"}, FilterStack([]string{"REACT", "react"}, FrontendKeywords))
}

func TestCategorizeStack(t *testing.T) {
	stack := ParseTechStack("React, Spring Boot, MySQL, JWT")

	breakdown := CategorizeStack(stack)
	assert.Equal(t, "React", breakdown.Frontend)
	assert.Equal(t, "Spring Boot", breakdown.Backend)
	assert.Equal(t, "MySQL", breakdown.Database)
	assert.Equal(t, "JWT", breakdown.Security)
}

func TestCategorizeStackEmpty(t *testing.T) {
	breakdown := CategorizeStack(nil)
	assert.Equal(t, "Not specified", breakdown.Frontend)
	assert.Equal(t, "Not specified", breakdown.Backend)
	assert.Equal(t, "Not specified", breakdown.Database)
	assert.Equal(t, "Not specified", breakdown.Security)
}
