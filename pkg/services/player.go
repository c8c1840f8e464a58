package services

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/video"
)

// Player turns lecture links into proxied streams and hands them to the
// desktop.
type Player struct {
	resolver *video.Resolver
	openFunc func(url string) error
	copyFunc func(text string) error
}

func NewPlayer(resolver *video.Resolver) *Player {
	return &Player{
		resolver: resolver,
		openFunc: openURL,
		copyFunc: clipboard.WriteAll,
	}
}

func (p *Player) Resolver() *video.Resolver {
	return p.resolver
}

func (p *Player) Prepare(teacherID data.TeacherID, classIndex, lectureIndex int, lecture data.Lecture) (*navigation.LectureRef, error) {
	id, stream, err := p.resolver.Resolve(lecture.URL)
	if err != nil {
		return nil, err
	}
	return &navigation.LectureRef{
		TeacherID:    teacherID,
		ClassIndex:   classIndex,
		LectureIndex: lectureIndex,
		Lecture:      lecture,
		VideoID:      id,
		StreamURL:    stream,
	}, nil
}

// Open hands a URL to the system opener.
func (p *Player) Open(url string) error {
	if err := p.openFunc(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

func (p *Player) Copy(url string) error {
	if err := p.copyFunc(url); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
