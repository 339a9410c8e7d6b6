package valueobjects

import "fmt"

// Operation is the content mutation a ticket tracks.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

var validOperations = map[Operation]bool{
	OperationCreate: true,
	OperationUpdate: true,
	OperationDelete: true,
}

func (o Operation) String() string {
	return string(o)
}

func (o Operation) IsValid() bool {
	return validOperations[o]
}

func (o Operation) IsCreate() bool {
	return o == OperationCreate
}

func (o Operation) IsUpdate() bool {
	return o == OperationUpdate
}

func (o Operation) IsDelete() bool {
	return o == OperationDelete
}

func NewOperation(s string) (Operation, error) {
	o := Operation(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid operation: %s", s)
	}
	return o, nil
}
