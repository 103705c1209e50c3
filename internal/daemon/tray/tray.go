package tray

import (
	"fmt"

	"github.com/getlantern/systray"

	"github.com/timetrack-io/timetrack/internal/track"
)

var (
	state   DaemonState
	onStart func()
	onExit  func()

	portItem    *systray.MenuItem
	runningItem *systray.MenuItem
	stopItem    *systray.MenuItem
	quitItem    *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (launch gRPC server here).
// onExitFn is called when the tray exits (cleanup here).
func Run(s DaemonState, onStartFn, onExitFn func()) {
	state = s
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTooltip("Timetrack")

	// Header
	header := systray.AddMenuItem("Timetrack Daemon", "")
	header.Disable()

	// Port
	portItem = systray.AddMenuItem("Starting...", "")
	portItem.Disable()

	systray.AddSeparator()

	runningItem = systray.AddMenuItem("No entry running", "")
	runningItem.Disable()
	stopItem = systray.AddMenuItem("Stop Timer", "Stop the running entry")
	stopItem.Disable()

	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Shut down Timetrack daemon")

	// Start the daemon services
	if onStart != nil {
		onStart()
	}

	// Update port display now that server is started
	if state != nil {
		portItem.SetTitle(fmt.Sprintf("Running on port: %d", state.Port()))
		UpdateRunning(state.RunningEntry())
	}

	// Handle click events
	go handleClicks()
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-stopItem.ClickedCh:
			if state != nil {
				go func() {
					state.StopRunning()
					UpdateRunning(state.RunningEntry())
				}()
			}

		case <-quitItem.ClickedCh:
			if state != nil {
				state.RequestShutdown()
			}
		}
	}
}

// UpdateRunning refreshes the running entry menu item and tooltip. Pass nil
// when nothing runs.
func UpdateRunning(info *EntryInfo) {
	if runningItem == nil {
		return
	}
	if info == nil {
		runningItem.SetTitle("No entry running")
		stopItem.Disable()
		systray.SetTooltip("Timetrack — idle")
		return
	}
	elapsed := track.FormatMilliseconds(info.DurationMillis)
	runningItem.SetTitle(fmt.Sprintf("● %s — %s", info.Name, elapsed))
	stopItem.Enable()
	systray.SetTooltip(fmt.Sprintf("Timetrack — tracking %s (%s)", info.Name, elapsed))
}
