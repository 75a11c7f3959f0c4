package widgets

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	sdialog "github.com/sqweek/dialog"
)

// SaveFile asks for a file name with the native dialog and hands it to cbc
// on the UI goroutine. Nothing is called when the user cancels.
func SaveFile(cbc func(str string), title, desc string, ext string) {
	go func() {
		filename, err := sdialog.File().Title(title).Filter(desc, ext).Save()
		if err != nil {
			if errors.Is(err, sdialog.ErrCancelled) {
				return
			}
			log.Printf("select file: %v", err)
			return
		}
		fyne.Do(func() {
			cbc(filename)
		})
	}()
}
