package tui

import (
	"fmt"
	"strings"
)

const (
	scopeEmotions  = "tab:emotions"
	scopeStats     = "tab:stats"
	scopeTimetable = "tab:timetable"
	scopeTimer     = "tab:timer"
	scopeDice      = "tab:dice"
	scopePicker    = "tab:picker"
	scopeMemo      = "tab:memo"
	scopeNotice    = "tab:notice"
	scopeVote      = "tab:vote"
	scopeWordCloud = "tab:wordcloud"
	// scopeInput is active while a text field owns the keyboard.
	scopeInput = "input"
)

const (
	actionQuit        = "quit"
	actionNextTab     = "next-tab"
	actionPrevTab     = "prev-tab"
	actionUp          = "up"
	actionDown        = "down"
	actionLeft        = "left"
	actionRight       = "right"
	actionSubmit      = "submit"
	actionCancel      = "cancel"
	actionEmotionTap  = "emotion-cycle"
	actionEmotionStar = "emotion-star"
	actionSubjectPrev = "subject-prev"
	actionSubjectNext = "subject-next"
	actionCustom      = "subject-custom"
	actionNote        = "edit-note"
	actionComplete    = "toggle-complete"
	actionTimerToggle = "timer-toggle"
	actionTimerReset  = "timer-reset"
	actionPresetPrev  = "preset-prev"
	actionPresetNext  = "preset-next"
	actionDiceRoll    = "dice-roll"
	actionPickerStart = "picker-start"
	actionMemoEdit    = "memo-edit"
	actionMemoClear   = "memo-clear"
	actionMemoPreview = "memo-preview"
	actionTodoAdd     = "todo-add"
	actionTodoToggle  = "todo-toggle"
	actionTodoDelete  = "todo-delete"
	actionLunchEdit   = "lunch-edit"
	actionVoteTopic   = "vote-topic"
	actionVoteEdit    = "vote-edit-option"
	actionVoteAdd     = "vote-add-option"
	actionVoteRemove  = "vote-remove-option"
	actionVoteStart   = "vote-start"
	actionVoteCast    = "vote-cast"
	actionVoteReveal  = "vote-reveal"
	actionVoteReset   = "vote-reset"
	actionVoteBack    = "vote-back"
	actionWordAdd     = "word-add"
	actionWordShuffle = "word-shuffle"
	actionWordClear   = "word-clear"
)

// switchTabAction names the binding that jumps to tab i (zero based).
func switchTabAction(i int) string {
	return fmt.Sprintf("switch-tab-%d", i+1)
}

func DefaultKeyBindings() []KeyBinding {
	all := []string{"*"}
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: actionQuit, Description: "quit", Scopes: all},
		{Keys: []string{"tab"}, Action: actionNextTab, Description: "next tab", Scopes: all},
		{Keys: []string{"shift+tab"}, Action: actionPrevTab, Description: "prev tab", Scopes: all},

		{Keys: []string{"enter"}, Action: actionSubmit, Description: "save", Scopes: []string{scopeInput}},
		{Keys: []string{"esc"}, Action: actionCancel, Description: "done", Scopes: []string{scopeInput, scopeMemo}},

		{Keys: []string{"up", "k"}, Action: actionUp, Description: "up", Scopes: []string{scopeEmotions, scopeTimetable, scopeNotice, scopeVote}},
		{Keys: []string{"down", "j"}, Action: actionDown, Description: "down", Scopes: []string{scopeEmotions, scopeTimetable, scopeNotice, scopeVote}},
		{Keys: []string{"left", "h"}, Action: actionLeft, Description: "left", Scopes: []string{scopeEmotions}},
		{Keys: []string{"right", "l"}, Action: actionRight, Description: "right", Scopes: []string{scopeEmotions}},

		{Keys: []string{"enter", "space"}, Action: actionEmotionTap, Description: "next mood", Scopes: []string{scopeEmotions}},
		{Keys: []string{"s"}, Action: actionEmotionStar, Description: "star", Scopes: []string{scopeEmotions}},

		{Keys: []string{"left", "h"}, Action: actionSubjectPrev, Description: "prev subject", Scopes: []string{scopeTimetable}},
		{Keys: []string{"right", "l"}, Action: actionSubjectNext, Description: "next subject", Scopes: []string{scopeTimetable}},
		{Keys: []string{"c"}, Action: actionCustom, Description: "custom", Scopes: []string{scopeTimetable}},
		{Keys: []string{"n"}, Action: actionNote, Description: "note", Scopes: []string{scopeTimetable}},
		{Keys: []string{"space", "x"}, Action: actionComplete, Description: "done", Scopes: []string{scopeTimetable}},

		{Keys: []string{"space", "enter"}, Action: actionTimerToggle, Description: "start/pause", Scopes: []string{scopeTimer}},
		{Keys: []string{"r"}, Action: actionTimerReset, Description: "reset", Scopes: []string{scopeTimer}},
		{Keys: []string{"left", "h", "["}, Action: actionPresetPrev, Description: "shorter", Scopes: []string{scopeTimer}},
		{Keys: []string{"right", "l", "]"}, Action: actionPresetNext, Description: "longer", Scopes: []string{scopeTimer}},

		{Keys: []string{"space", "enter", "r"}, Action: actionDiceRoll, Description: "roll", Scopes: []string{scopeDice}},
		{Keys: []string{"space", "enter", "p"}, Action: actionPickerStart, Description: "pick", Scopes: []string{scopePicker}},

		{Keys: []string{"e", "enter"}, Action: actionMemoEdit, Description: "write", Scopes: []string{scopeMemo}},
		{Keys: []string{"ctrl+l"}, Action: actionMemoClear, Description: "clear", Scopes: []string{scopeMemo}},
		{Keys: []string{"m"}, Action: actionMemoPreview, Description: "preview", Scopes: []string{scopeMemo}},

		{Keys: []string{"a"}, Action: actionTodoAdd, Description: "add", Scopes: []string{scopeNotice}},
		{Keys: []string{"space", "x"}, Action: actionTodoToggle, Description: "check", Scopes: []string{scopeNotice}},
		{Keys: []string{"d", "delete"}, Action: actionTodoDelete, Description: "delete", Scopes: []string{scopeNotice}},
		{Keys: []string{"m"}, Action: actionLunchEdit, Description: "lunch", Scopes: []string{scopeNotice}},

		{Keys: []string{"t"}, Action: actionVoteTopic, Description: "topic", Scopes: []string{scopeVote}},
		{Keys: []string{"e"}, Action: actionVoteEdit, Description: "edit option", Scopes: []string{scopeVote}},
		{Keys: []string{"a"}, Action: actionVoteAdd, Description: "add option", Scopes: []string{scopeVote}},
		{Keys: []string{"d"}, Action: actionVoteRemove, Description: "remove option", Scopes: []string{scopeVote}},
		{Keys: []string{"s"}, Action: actionVoteStart, Description: "start", Scopes: []string{scopeVote}},
		{Keys: []string{"enter", "space"}, Action: actionVoteCast, Description: "vote", Scopes: []string{scopeVote}},
		{Keys: []string{"v"}, Action: actionVoteReveal, Description: "results", Scopes: []string{scopeVote}},
		{Keys: []string{"r"}, Action: actionVoteReset, Description: "reset", Scopes: []string{scopeVote}},
		{Keys: []string{"b"}, Action: actionVoteBack, Description: "edit vote", Scopes: []string{scopeVote}},

		{Keys: []string{"a", "enter"}, Action: actionWordAdd, Description: "add word", Scopes: []string{scopeWordCloud}},
		{Keys: []string{"s"}, Action: actionWordShuffle, Description: "shuffle", Scopes: []string{scopeWordCloud}},
		{Keys: []string{"ctrl+l", "c"}, Action: actionWordClear, Description: "clear", Scopes: []string{scopeWordCloud}},
	}
	for i, k := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"} {
		bindings = append(bindings, KeyBinding{Keys: []string{k}, Action: switchTabAction(i), Description: "", Scopes: all})
	}
	return bindings
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
