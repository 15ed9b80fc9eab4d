// monitor is a generic SDL2 register/bus visualizer for the processor
// core: it loads a flat binary image, runs it, and renders the register
// file, flags and a memory strip once per frame. It has no notion of any
// particular machine's chips; it exists to watch the CPU run, not to
// reproduce any specific system.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/ioutil"
	"log"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sixfiveoh/ull6502/access"
	"github.com/sixfiveoh/ull6502/bus"
	"github.com/sixfiveoh/ull6502/cpu"
)

var (
	romPath   = flag.String("rom", "", "Path to a flat binary image to load")
	loadAddr  = flag.Int("load_addr", 0x0000, "Address to load the image at")
	resetAddr = flag.Int("reset_addr", -1, "Reset vector target; defaults to load_addr if unset")
	variant   = flag.String("variant", "nmos6502", "Processor variant: nmos6502, ricoh2a03 or wdc65c02s")
	scale     = flag.Int("scale", 2, "Scale factor for the monitor window")
	hz        = flag.Int("hz", 60, "Frames per second to render the monitor at")
	memBase   = flag.Int("mem_base", 0x0000, "Base address of the memory strip shown at the bottom of the window")
)

const (
	winWidth  = 512
	winHeight = 288
	memRows   = 8
	memCols   = 16
)

func variantFor(name string) cpu.Variant {
	switch name {
	case "nmos6502":
		return cpu.NMOS6502
	case "ricoh2a03":
		return cpu.Ricoh2A03
	case "wdc65c02s":
		return cpu.WDC65C02S
	default:
		log.Fatalf("Invalid variant %q - must be nmos6502, ricoh2a03 or wdc65c02s", name)
		return cpu.NMOS6502
	}
}

// fastImage adapts an sdl.Surface to image.Image/draw.Image so
// golang.org/x/image's font drawer can blit text straight into the
// window's pixel buffer.
type fastImage struct {
	surface *sdl.Surface
	data    []byte
}

func (f *fastImage) Set(x, y int, c color.Color) {
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	r, g, b, a := c.RGBA()
	f.data[i+0] = uint8(b >> 8)
	f.data[i+1] = uint8(g >> 8)
	f.data[i+2] = uint8(r >> 8)
	f.data[i+3] = uint8(a >> 8)
}

func (f *fastImage) ColorModel() color.Model { return f.surface.ColorModel() }
func (f *fastImage) Bounds() image.Rectangle { return f.surface.Bounds() }
func (f *fastImage) At(x, y int) color.Color { return f.surface.At(x, y) }

func drawText(img draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func flagLetters(p *cpu.Processor) string {
	letter := func(mask uint8, set, clear byte) byte {
		if p.Flag(mask) {
			return set
		}
		return clear
	}
	return string([]byte{
		letter(cpu.FlagNegative, 'N', 'n'),
		letter(cpu.FlagOverflow, 'V', 'v'),
		letter(cpu.FlagExpansion, 'E', 'e'),
		letter(cpu.FlagBreak, 'B', 'b'),
		letter(cpu.FlagDecimal, 'D', 'd'),
		letter(cpu.FlagInterruptDisable, 'I', 'i'),
		letter(cpu.FlagZero, 'Z', 'z'),
		letter(cpu.FlagCarry, 'C', 'c'),
	})
}

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatalf("Usage: %s --rom=<path> [flags]", "monitor")
	}
	if *resetAddr < 0 {
		*resetAddr = *loadAddr
	}

	rom, err := ioutil.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("Can't open %s: %v", *romPath, err)
	}

	b := bus.NewFlatBus()
	p, err := cpu.WithProgram(b, variantFor(*variant), uint16(*loadAddr), rom, uint16(*resetAddr))
	if err != nil {
		log.Fatalf("Can't construct processor: %v", err)
	}

	var window *sdl.Window
	fi := &fastImage{}

	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("Can't init SDL: %v", err)
			}
			window, err = sdl.CreateWindow("6502 monitor", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
				int32(winWidth**scale), int32(winHeight**scale), sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("Can't create window: %v", err)
			}
			fi.surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("Can't get window surface: %v", err)
			}
			fi.data = fi.surface.Pixels()
			wg.Done()
		})
		wg.Wait()
		defer func() {
			window.Destroy()
			sdl.Quit()
		}()

		frame := time.Second / time.Duration(*hz)
		quit := false
		for !quit {
			start := time.Now()
			sdl.Do(func() {
				for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
					switch e := event.(type) {
					case *sdl.QuitEvent:
						quit = true
					case *sdl.KeyboardEvent:
						if e.Keysym.Sym == sdl.K_ESCAPE {
							quit = true
						}
					}
				}
			})
			if quit {
				break
			}

			// Run roughly one video frame's worth of instructions between
			// renders so the monitor stays responsive to STP/JAM/Stalled.
			cpu.RunUntil(p, b, cpu.Config{
				InstructionLimit: 2000,
				Predicate: func(p *cpu.Processor, _ bus.Bus) bool {
					return p.State != cpu.Running
				},
			})

			sdl.Do(func() {
				fi.surface.FillRect(nil, 0)
				drawText(fi, 8, 16, fmt.Sprintf("PC=%.4X A=%.2X X=%.2X Y=%.2X SP=%.2X", p.PC, p.A, p.X, p.Y, p.SP), color.White)
				drawText(fi, 8, 32, fmt.Sprintf("P=%s STATE=%s CYCLES=%d", flagLetters(p), p.State, p.Cycles), color.White)
				drawText(fi, 8, 48, fmt.Sprintf("LAST OPCODE=%.2X CYCLES=%d", p.LastOpcode, p.LastCycles), color.White)
				base := uint16(*memBase)
				for row := 0; row < memRows; row++ {
					line := fmt.Sprintf("%.4X:", base)
					for col := 0; col < memCols; col++ {
						line += fmt.Sprintf(" %.2X", b.Read(base, access.DummyRead))
						base++
					}
					drawText(fi, 8, 80+row*16, line, color.RGBA{R: 180, G: 180, B: 180, A: 255})
				}
				window.UpdateSurface()
			})

			if elapsed := time.Since(start); elapsed < frame {
				time.Sleep(frame - elapsed)
			}
		}
	})
}
