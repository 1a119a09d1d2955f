package board

// CreateSubPointCommand carries a sub-point creation request into the
// service layer. DependsOn is empty for an independent task.
type CreateSubPointCommand struct {
	AreaID      string `validate:"required"`
	Title       string `validate:"required"`
	Description string
	DependsOn   string
	CreatedBy   string `validate:"required"`
}

// EditSubPointCommand updates creator-editable fields. Nil pointers leave
// the field untouched; a pointer to the empty string clears DependsOn.
// Completed, ResponsibleUser, CreatedBy and Timestamp are never editable.
type EditSubPointCommand struct {
	ID          string `validate:"required"`
	Editor      string `validate:"required"`
	Title       *string
	Description *string
	DependsOn   *string
}

// AddCommentCommand appends a comment to an area's log.
type AddCommentCommand struct {
	AreaID   string `validate:"required"`
	Username string `validate:"required"`
	Message  string `validate:"required"`
}
