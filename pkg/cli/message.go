package cli

import "fmt"

func paint(colour, message string) {
	fmt.Print(colour + message + Reset)
}

func paintln(colour, message string) {
	fmt.Println(colour + message + Reset)
}

func Error(message string)   { paint(RedColour, message) }
func Errorln(message string) { paintln(RedColour, message) }

func Success(message string)   { paint(GreenColour, message) }
func Successln(message string) { paintln(GreenColour, message) }

func Warning(message string)   { paint(YellowColour, message) }
func Warningln(message string) { paintln(YellowColour, message) }

func Magenta(message string)   { paint(MagentaColour, message) }
func Magentaln(message string) { paintln(MagentaColour, message) }

func Blue(message string)   { paint(BlueColour, message) }
func Blueln(message string) { paintln(BlueColour, message) }

func Cyan(message string)   { paint(CyanColour, message) }
func Cyanln(message string) { paintln(CyanColour, message) }

func Gray(message string)   { paint(GrayColour, message) }
func Grayln(message string) { paintln(GrayColour, message) }
