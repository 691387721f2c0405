// Package state holds headless interaction state for widgets: which accordion
// items are open, which select option is highlighted, where focus sits inside a
// modal, and where a tooltip should be placed. Nothing here renders.
package state
