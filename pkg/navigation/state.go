package navigation

import (
	"github.com/kerbaras/lectures/pkg/data"
)

// LectureRef points at the lecture shown on the video page together with
// the resolved stream.
type LectureRef struct {
	TeacherID    data.TeacherID
	ClassIndex   int
	LectureIndex int
	Lecture      data.Lecture
	VideoID      string
	StreamURL    string
}

// State is what the screens render. Only the Controller changes it.
type State struct {
	Page      Page
	Course    *data.Course
	Teacher   *data.Teacher
	Lecture   *LectureRef
	Materials data.Materials
	Exams     *data.ExamArchive
	Subject   *data.Subject
}

// Destination is a forward navigation request. Build one with the To*
// constructors.
type Destination struct {
	page      Page
	course    *data.Course
	teacher   *data.Teacher
	lecture   *LectureRef
	materials data.Materials
	exams     *data.ExamArchive
	subject   *data.Subject
}

func (d Destination) Page() Page {
	return d.page
}

func ToHome() Destination {
	return Destination{page: Home}
}

func ToTeachers(course *data.Course) Destination {
	return Destination{page: Teachers, course: course}
}

// ToTeacher opens a teacher page. A nil course keeps the current one.
func ToTeacher(course *data.Course, teacher *data.Teacher) Destination {
	return Destination{page: Teacher, course: course, teacher: teacher}
}

// ToVideo opens a lecture. A nil teacher keeps the current one.
func ToVideo(teacher *data.Teacher, lecture *LectureRef) Destination {
	return Destination{page: Video, teacher: teacher, lecture: lecture}
}

func ToMaterials(materials data.Materials) Destination {
	return Destination{page: Materials, materials: materials}
}

func ToExams(exams *data.ExamArchive) Destination {
	return Destination{page: Exams, exams: exams}
}

// ToSubject opens the chapters of one subject. A nil archive keeps the
// current one.
func ToSubject(exams *data.ExamArchive, subject *data.Subject) Destination {
	return Destination{page: SubjectExams, exams: exams, subject: subject}
}

func (d Destination) validate() error {
	switch d.page {
	case Home:
		return nil
	case Teachers:
		if d.course == nil || d.course.Teachers == nil {
			return data.ErrDataUnavailable
		}
	case Teacher:
		if d.teacher == nil {
			return data.ErrDataUnavailable
		}
	case Video:
		if d.lecture == nil {
			return data.ErrDataUnavailable
		}
	case Materials:
		if d.materials == nil {
			return data.ErrDataUnavailable
		}
	case Exams:
		if d.exams == nil {
			return data.ErrDataUnavailable
		}
	case SubjectExams:
		if d.subject == nil {
			return data.ErrDataUnavailable
		}
	default:
		return ErrUnknownPage
	}
	return nil
}

// apply returns the state after landing on d.
func (d Destination) apply(s State) State {
	switch d.page {
	case Home:
		return State{Page: Home}
	case Teachers:
		s.Course = d.course
		s.Teacher = nil
		s.Lecture = nil
	case Teacher:
		if d.course != nil {
			s.Course = d.course
		}
		s.Teacher = d.teacher
		s.Lecture = nil
	case Video:
		if d.teacher != nil {
			s.Teacher = d.teacher
		}
		s.Lecture = d.lecture
	case Materials:
		s.Materials = d.materials
	case Exams:
		s.Exams = d.exams
		s.Subject = nil
	case SubjectExams:
		if d.exams != nil {
			s.Exams = d.exams
		}
		s.Subject = d.subject
	}
	s.Page = d.page
	return s
}
