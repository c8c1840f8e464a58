package navigation

type Page int

const (
	Home Page = iota
	Teachers
	Teacher
	Video
	Materials
	Exams
	SubjectExams
)

var pageNames = map[Page]string{
	Home:         "home",
	Teachers:     "teachers",
	Teacher:      "teacher",
	Video:        "video",
	Materials:    "materials",
	Exams:        "exams",
	SubjectExams: "subjectExams",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return "unknown"
}

// Requirement names the piece of state a back edge needs to land on its
// target. Without it, back falls through to Home.
type Requirement int

const (
	RequiresNothing Requirement = iota
	RequiresCourse
	RequiresTeacher
)

type Edge struct {
	Target   Page
	Requires Requirement
}

var backEdges = map[Page]Edge{
	Teachers:     {Target: Home, Requires: RequiresNothing},
	Teacher:      {Target: Teachers, Requires: RequiresCourse},
	Video:        {Target: Teacher, Requires: RequiresTeacher},
	Materials:    {Target: Home, Requires: RequiresNothing},
	Exams:        {Target: Home, Requires: RequiresNothing},
	SubjectExams: {Target: Exams, Requires: RequiresNothing},
}

// BackEdge returns the back edge leaving p. Pages without an edge go Home.
func BackEdge(p Page) (Edge, bool) {
	edge, ok := backEdges[p]
	return edge, ok
}
