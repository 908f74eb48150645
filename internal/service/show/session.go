package show

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dhowlett/scarebox/internal/config"
	"github.com/dhowlett/scarebox/internal/logger"
	"github.com/dhowlett/scarebox/internal/media"
	"github.com/dhowlett/scarebox/internal/proc"
	"github.com/dhowlett/scarebox/internal/rotation"
)

// cleanupWaitBudget bounds how long cleanup waits for the terminal
// restore command once the run context is already canceled.
const cleanupWaitBudget = 2 * time.Second

// session owns the state of one running show: the active theme and scare
// video, the retained viewer process, and the optional rotator. It is
// the motion handler driving a full scare cycle per rising edge.
type session struct {
	cfg       *config.Config
	lib       media.Library
	rot       *rotation.Rotator
	runner    proc.Runner
	recording bool

	theme     string
	scareFile string
	viewer    proc.Handle

	now func() time.Time

	cleanupOnce sync.Once
}

func newSession(
	cfg *config.Config,
	lib media.Library,
	rot *rotation.Rotator,
	runner proc.Runner,
	theme string,
	recording bool,
) *session {
	return &session{
		cfg:       cfg,
		lib:       lib,
		rot:       rot,
		runner:    runner,
		recording: recording,
		theme:     theme,
		scareFile: lib.VideoPath(theme),
		now:       time.Now,
	}
}

// OnMotion runs one scare cycle on a rising edge; falling edges are
// ignored. The cycle blocks the polling loop for its whole duration.
func (s *session) OnMotion(ctx context.Context, active bool) error {
	if !active {
		return nil
	}

	ctx = logger.WithKV(ctx, "cycle_id", uuid.NewString())

	logger.InfoKV(ctx, "Motion detected, starting scare cycle", "theme", s.theme)

	var (
		recorder      proc.Handle
		recordingPath string
	)

	if s.recording {
		recordingPath = media.RecordingPath(s.cfg.Paths.RecordingsDir, s.now())

		h, err := s.runner.Start(ctx, media.RecordCommand(s.cfg.Camera, recordingPath))
		if err != nil {
			logger.ErrorKV(ctx, "Could not start reaction recording, continuing without it", "error", err)
		} else {
			recorder = h

			logger.InfoKV(ctx, "Recording reaction", "file", recordingPath)
		}
	}

	logger.InfoKV(ctx, "Playing scare video", "video", s.scareFile)

	if err := s.playBlocking(ctx, s.scareFile); err != nil {
		logger.ErrorKV(ctx, "Scare video playback failed", "error", err, "video", s.scareFile)
	}

	if ctx.Err() != nil {
		return nil
	}

	if recorder != nil {
		// Never play back a file the recorder is still writing.
		if recorder.Running() {
			logger.Info(ctx, "Waiting for recording to complete")

			if err := recorder.Wait(ctx); err != nil {
				logger.ErrorKV(ctx, "Recording did not complete cleanly", "error", err)
			}
		}

		if ctx.Err() != nil {
			return nil
		}

		if media.Exists(recordingPath) {
			logger.InfoKV(ctx, "Playing back recording", "file", recordingPath)

			if err := s.playBlocking(ctx, recordingPath); err != nil {
				logger.ErrorKV(ctx, "Recording playback failed", "error", err)
			}
		} else {
			logger.WarnKV(ctx, "Recording file not found, skipping playback", "file", recordingPath)
		}
	}

	logger.Info(ctx, "Scare cycle completed")

	if s.rot != nil {
		s.maybeRotate(ctx)
	}

	return nil
}

// playBlocking plays one media file and waits for the player to exit.
func (s *session) playBlocking(ctx context.Context, path string) error {
	h, err := s.runner.Start(ctx, media.PlayerCommand(s.cfg.Video, path))
	if err != nil {
		return err
	}

	return h.Wait(ctx)
}

// maybeRotate asks the rotator for a theme switch and, when one happens,
// updates the active scare file and refreshes the start image. A missing
// asset on the new theme is a warning, not a stop: the next cycle logs
// its own playback errors.
func (s *session) maybeRotate(ctx context.Context) {
	next, rotated := s.rot.MaybeRotate(ctx)
	if !rotated {
		return
	}

	if err := s.lib.Validate(next); err != nil {
		logger.WarnKV(ctx, "Rotated theme assets incomplete", "theme", next, "error", err)
	}

	s.theme = next
	s.scareFile = s.lib.VideoPath(next)
	s.ShowImage(ctx, next)
}

// ShowImage puts the theme's start image on the framebuffer, replacing
// any viewer started earlier. The viewer detaches and stays on screen,
// so the handle is retained for cleanup.
func (s *session) ShowImage(ctx context.Context, theme string) {
	if s.viewer != nil && s.viewer.Running() {
		if err := s.viewer.Kill(); err != nil {
			logger.WarnKV(ctx, "Could not stop previous image viewer", "error", err)
		}
	}

	imagePath := s.lib.ImagePath(theme)

	h, err := s.runner.Start(ctx, media.ViewerCommand(s.cfg.Display, imagePath))
	if err != nil {
		logger.ErrorKV(ctx, "Could not display start image", "image", imagePath, "error", err)

		return
	}

	s.viewer = h

	logger.InfoKV(ctx, "Displaying start image", "image", imagePath)
}

// Cleanup stops the visible display and restores the terminal. Safe to
// call multiple times; it runs on every exit path.
func (s *session) Cleanup(ctx context.Context) {
	s.cleanupOnce.Do(func() {
		logger.Info(ctx, "Cleaning up")

		if s.viewer != nil && s.viewer.Running() {
			if err := s.viewer.Kill(); err != nil {
				logger.WarnKV(ctx, "Could not stop image viewer", "error", err)
			}
		}

		// Viewers from earlier runs detach from our process tree; reap
		// them by name as well.
		if killed, err := proc.KillByName(s.cfg.Display.Viewer); err != nil {
			logger.WarnKV(ctx, "Could not scan for stray viewers", "error", err)
		} else if killed > 0 {
			logger.InfoKV(ctx, "Stopped stray image viewers", "count", killed)
		}

		s.restoreTerminal(ctx)
	})
}

// restoreTerminal runs `stty sane`; the framebuffer viewer leaves the
// console in a raw state otherwise. Best effort.
func (s *session) restoreTerminal(ctx context.Context) {
	h, err := s.runner.Start(ctx, []string{"stty", "sane"})
	if err != nil {
		logger.DebugKV(ctx, "Could not restore terminal", "error", err)

		return
	}

	// The run context is usually canceled by the time cleanup runs.
	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupWaitBudget)
	defer cancel()

	_ = h.Wait(waitCtx)
}
