package user

// Level is the severity of a Notice
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Notice is the message shown to the user after a user-screen action
type Notice struct {
	Level   Level
	Title   string
	Details string
}

func AddedNotice(username string) Notice {
	return Notice{Level: LevelInfo, Title: "Successfully added", Details: "User name: " + username}
}

func EditedNotice(username string) Notice {
	return Notice{Level: LevelInfo, Title: "Successfully edited", Details: "User name: " + username}
}

func AlreadyRegisteredNotice() Notice {
	return Notice{Level: LevelWarning, Title: "Already registered"}
}

func DeletedNotice() Notice {
	return Notice{Level: LevelInfo, Title: "User's profile successfully deleted"}
}

func ErrorNotice() Notice {
	return Notice{Level: LevelError, Title: "Some error occurred"}
}

// String joins title and details on one line
func (n Notice) String() string {
	if n.Details == "" {
		return n.Title
	}
	return n.Title + ": " + n.Details
}
