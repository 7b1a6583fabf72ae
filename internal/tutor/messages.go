package tutor

import (
	"fmt"
	"time"

	"github.com/abhisek/p2tutor/internal/progress"
)

// Role identifies who authored a chat message.
type Role int

const (
	RoleTutor Role = iota
	RoleStudent
)

func (r Role) String() string {
	if r == RoleStudent {
		return "student"
	}
	return "tutor"
}

// Speaker returns the name shown before a message.
func (r Role) Speaker() string {
	if r == RoleStudent {
		return "👨‍🎓 Umunyeshuri"
	}
	return "🧑‍🏫 Mwarimu"
}

// Message is one entry of the chat transcript.
type Message struct {
	Role Role
	Text string
	Time time.Time
}

// Prefix renders the "[HH:MM] Speaker: " label of the message.
func (m Message) Prefix() string {
	return fmt.Sprintf("[%s] %s: ", m.Time.Format("15:04"), m.Role.Speaker())
}

// Presenter receives every message the tutor produces.
type Presenter interface {
	Display(Message)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(Message)

func (f PresenterFunc) Display(m Message) { f(m) }

const (
	msgWelcome       = "🇷🇼 Muraho! Welcome to Rwandan P2 Math Tutor! Choose a topic to practice mathematics."
	msgNoProblem     = "Please select a problem type first!"
	msgEmptyAnswer   = "Please enter your answer!"
	msgInvalidAnswer = "Please enter a valid answer!"
	msgNoMoreHints   = "💡 No more hints available! Try to solve it with the steps provided."
	msgNextProblem   = "Witeguye indi nkuru? (Ready for another problem?) Choose a topic above! 🚀"
)

func correctFeedback(encouragement string) string {
	return encouragement + " You got it right!\n\nHere's the complete solution:"
}

func incorrectFeedback(answer string) string {
	return fmt.Sprintf("Ntabwo ari ukuri (Not quite right). The correct answer is %s.\n\nLet me show you how to solve it:", answer)
}

func hintText(i int, hint string) string {
	return fmt.Sprintf("💡 Hint %d: %s", i, hint)
}

func stepText(i int, step string) string {
	return fmt.Sprintf("Step %d: %s", i, step)
}

func levelText(level string) string {
	return fmt.Sprintf("Difficulty set to %s.", level)
}

// StatusLine renders the learner's stats bar.
func StatusLine(s progress.Stats) string {
	return fmt.Sprintf("Problems Solved: %d | Accuracy: %.1f%% | Level: %s",
		s.Attempted, s.Accuracy(), s.Difficulty)
}
