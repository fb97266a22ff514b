package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"funkin-launcher/internal/theme"
)

// showThemeEditor opens the theme editor window: a name entry, one hex
// entry per color, save-and-apply, and a list of the merged themes with
// apply/delete. Label colors follow the main background and foreground,
// as in the stock palettes.
func (m *Manager) showThemeEditor() {
	editor := m.fyneApp.NewWindow("Theme Editor")
	editor.Resize(fyne.NewSize(360, 420))

	nameEntry := widget.NewEntry()
	nameEntry.SetText(m.themeSelect.Selected)

	fields := []struct {
		label string
		value string
	}{
		{"Main Background", m.currentTheme.BgDark},
		{"Button Background", m.currentTheme.Bg},
		{"Button Text", m.currentTheme.Fg},
		{"Hover Color", m.currentTheme.Hover},
		{"Click Color", m.currentTheme.Click},
	}

	entries := make([]*widget.Entry, len(fields))
	form := widget.NewForm(widget.NewFormItem("Theme Name", nameEntry))
	for i, f := range fields {
		e := widget.NewEntry()
		e.SetText(f.value)
		entries[i] = e
		form.Append(f.label, e)
	}

	saveBtn := widget.NewButton("Save & Apply", func() {
		name := nameEntry.Text
		if name == "" {
			dialog.ShowError(fmt.Errorf("theme name cannot be empty"), editor)
			return
		}

		t := theme.Theme{
			BgDark: entries[0].Text,
			Bg:     entries[1].Text,
			Fg:     entries[2].Text,
			Hover:  entries[3].Text,
			Click:  entries[4].Text,
		}
		t.LabelBg = t.BgDark
		t.LabelFg = t.Fg

		if m.themeSaveHandler != nil {
			m.themeSaveHandler(name, t)
		}
		editor.Close()
	})

	names := m.themeSelect.Options
	themeList := widget.NewList(
		func() int { return len(names) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(names[id])
		},
	)

	selected := -1
	themeList.OnSelected = func(id widget.ListItemID) {
		selected = id
	}

	applyBtn := widget.NewButton("Apply", func() {
		if selected < 0 || selected >= len(names) {
			return
		}
		if m.themeSelectHandler != nil {
			m.themeSelectHandler(names[selected])
		}
		editor.Close()
	})

	deleteBtn := widget.NewButton("Delete", func() {
		if selected < 0 || selected >= len(names) {
			return
		}
		name := names[selected]
		dialog.ShowConfirm("Delete Theme",
			fmt.Sprintf("Are you sure you want to delete '%s'?", name),
			func(confirmed bool) {
				if !confirmed {
					return
				}
				if m.themeDeleteHandler != nil {
					m.themeDeleteHandler(name)
				}
				editor.Close()
			}, editor)
	})

	editor.SetContent(container.NewBorder(
		container.NewVBox(form, container.NewCenter(saveBtn), widget.NewSeparator(), widget.NewLabel("Saved Themes:")),
		container.NewGridWithColumns(2, applyBtn, deleteBtn),
		nil, nil,
		themeList,
	))
	editor.Show()
}
