package config

// Seed templates written by init_context. These texts are part of the
// external contract — agents read the files they produce — so they are
// fixed literals, never regenerated or reformatted.

// CodingStandardsTemplate seeds .ai/skills/coding-standards.md.
const CodingStandardsTemplate = `# Coding Standards

## General Principles
- **Clarity over cleverness**: Write code that is easy to understand.
- **Consistency**: Follow the existing style of the codebase.
- **DRY (Don't Repeat Yourself)**: Extract common logic.

## Naming Conventions
- Variables: ` + "`camelCase`" + `
- Functions: ` + "`camelCase`" + `
- Classes: ` + "`PascalCase`" + `
- Constants: ` + "`UPPER_CASE`" + `

## Error Handling
- Always handle errors explicitly.
- Use custom error classes for domain-specific errors.
`

// GoalsTemplate seeds .agent_memory/goals.md.
const GoalsTemplate = `# Current Goals

## Main Objective
Describe the main objective here.

## Tasks
- [ ] Task 1
- [ ] Task 2
`

// GitignoreContent excludes everything in the memory area from version
// control except the ignore file itself and the goals document.
const GitignoreContent = "*\n!.gitignore\n!goals.md\n"

// StateTemplate renders the workspace snapshot. Substitution order:
// timestamp, goals, recent changes, tree depth, directory structure.
const StateTemplate = `# Workspace State
Updated: %s

## Current Goals
%s

## Recent Changes
%s

## Directory Structure (Depth: %d)
%s
`
