package state

import (
	"ide-commands/cmd"
	"ide-commands/log"
)

// ScopeStack tracks which scoped registry owns the keyboard. Only the top of
// the stack is active. Every transition deactivates the outgoing scope before
// activating the incoming one, so the central registry never holds two
// scopes' commands for the same id.
type ScopeStack struct {
	stack []*cmd.ScopedCommandRegistry
}

// NewScopeStack creates an empty stack.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{}
}

// Focus replaces the top scope, for switching between sibling regions such
// as editor tabs. On an empty stack it behaves like Push.
func (sm *ScopeStack) Focus(scope *cmd.ScopedCommandRegistry) {
	current := sm.Current()
	if current == scope {
		return
	}
	if sm.contains(scope) {
		log.WarningLog.Printf("scope %s is already on the stack below the top", scope.Name())
		return
	}
	if current == nil {
		sm.Push(scope)
		return
	}
	current.Deactivate()
	sm.stack[len(sm.stack)-1] = scope
	scope.Activate()
}

// Push suspends the current scope and activates scope on top of it, for
// nested modal regions.
func (sm *ScopeStack) Push(scope *cmd.ScopedCommandRegistry) {
	if sm.contains(scope) {
		log.WarningLog.Printf("scope %s is already on the stack", scope.Name())
		return
	}
	if current := sm.Current(); current != nil {
		current.Deactivate()
	}
	sm.stack = append(sm.stack, scope)
	scope.Activate()
}

// Pop deactivates the top scope and reactivates the one below it. It returns
// the popped scope, or nil when the stack is empty.
func (sm *ScopeStack) Pop() *cmd.ScopedCommandRegistry {
	if len(sm.stack) == 0 {
		return nil
	}
	top := sm.stack[len(sm.stack)-1]
	top.Deactivate()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if next := sm.Current(); next != nil {
		next.Activate()
	}
	return top
}

// Current returns the active scope, or nil.
func (sm *ScopeStack) Current() *cmd.ScopedCommandRegistry {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Depth returns the number of scopes on the stack.
func (sm *ScopeStack) Depth() int {
	return len(sm.stack)
}

func (sm *ScopeStack) contains(scope *cmd.ScopedCommandRegistry) bool {
	for _, s := range sm.stack {
		if s == scope {
			return true
		}
	}
	return false
}
