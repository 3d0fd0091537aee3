package common

import (
	"bytes"
	"fmt"
	"image/color"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleDefault FontStyle = "" // Regular
	FontStyleBold    FontStyle = "bold"
)

// Константы размеров и отступов
const (
	imageWidth       = 1100
	headerHeight     = 90
	footerHeight     = 60
	slotRowHeight    = 36
	leftLabelsWidth  = 90
	legendWidth      = 170
	blockPaddingX    = 6
	minBlockHeight   = 14.0
	blockBorderRad   = 6.0
	shadowOffset     = 3.0
	maxLanes         = 8 // остальные пересечения уходят в счётчик в подвале
	imageHeight      = headerHeight + schedule.SlotCount*slotRowHeight + footerHeight
	timelineAreaLeft = leftLabelsWidth
	timelineAreaW    = imageWidth - leftLabelsWidth - legendWidth
)

// Константы шрифтов
const (
	titleFontSize      = 26.0
	hourLabelFontSize  = 17.0
	blockFontSize      = 15.0
	legendItemFontSize = 14.0
	footerFontSize     = 15.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	halfHourColor    = color.NRGBA{200, 200, 200, 255}
	evenRowColor     = color.NRGBA{240, 240, 240, 255}
	oddRowColor      = color.NRGBA{230, 230, 230, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	scheduledColor  = color.RGBA{135, 180, 230, 230}
	confirmedColor  = color.RGBA{133, 193, 85, 220}
	completedColor  = color.RGBA{170, 170, 210, 220}
	canceledColor   = color.RGBA{158, 158, 158, 200}
	noShowColor     = color.RGBA{255, 182, 193, 255}
	unknownColor    = color.RGBA{220, 220, 220, 200}
	blockTextColor  = color.RGBA{20, 24, 28, 230}
	blockShadowClr  = color.RGBA{0, 0, 0, 20}
	legendItemColor = color.RGBA{70, 74, 78, 220}
)

var (
	fontsOnce   sync.Once
	cachedFonts map[FontStyle]*opentype.Font
)

// renderNow текущее время для линии "сейчас"
var renderNow = time.Now

// loadFont ставит шрифт Go нужного стиля или basicfont как fallback
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontsOnce.Do(func() {
		cachedFonts = make(map[FontStyle]*opentype.Font)
		for s, data := range map[FontStyle][]byte{
			FontStyleDefault: goregular.TTF,
			FontStyleBold:    gobold.TTF,
		} {
			if parsed, err := opentype.Parse(data); err == nil {
				cachedFonts[s] = parsed
			}
		}
	})

	parsed, ok := cachedFonts[style]
	if !ok {
		parsed, ok = cachedFonts[FontStyleDefault]
	}
	if ok {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	// fallback к встроенному шрифту
	dc.SetFontFace(basicfont.Face7x13)
}

// placedBlock запись с вычисленной дорожкой
type placedBlock struct {
	record model.AppointmentRecord
	start  schedule.Clock
	end    schedule.Clock
	lane   int
}

// RenderDayTimeline рисует получасовую сетку дня в PNG
func RenderDayTimeline(date time.Time, tl schedule.Timeline) ([]byte, error) {
	blocks, lanes := layoutBlocks(tl)

	dc := createCanvas()
	drawHeader(dc, date, tl)
	drawSlotRows(dc)
	hidden := drawBlocks(dc, blocks, lanes)
	if schedule.IsSameCalendarDay(date, renderNow()) {
		drawCurrentTimeLine(dc, renderNow())
	}
	drawLegend(dc)
	drawFooter(dc, tl, hidden)

	return encodeImage(dc)
}

// layoutBlocks раскладывает пересекающиеся записи по дорожкам
func layoutBlocks(tl schedule.Timeline) ([]placedBlock, int) {
	var blocks []placedBlock
	for _, slot := range tl.Slots {
		for _, a := range slot.Appointments {
			start, errStart := schedule.ParseClock(a.StartTime)
			end, errEnd := schedule.ParseClock(a.EndTime)
			if errStart != nil || errEnd != nil {
				continue
			}
			if end <= start {
				end = start + schedule.SlotWidthMinutes
			}
			blocks = append(blocks, placedBlock{record: a, start: start, end: end})
		}
	}

	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].start < blocks[j].start })

	var laneEnds []schedule.Clock
	for i := range blocks {
		placed := false
		for lane, laneEnd := range laneEnds {
			if laneEnd <= blocks[i].start {
				blocks[i].lane = lane
				laneEnds[lane] = blocks[i].end
				placed = true
				break
			}
		}
		if !placed {
			blocks[i].lane = len(laneEnds)
			laneEnds = append(laneEnds, blocks[i].end)
		}
	}

	lanes := len(laneEnds)
	if lanes == 0 {
		lanes = 1
	}
	return blocks, lanes
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует дату и количество записей
func drawHeader(dc *gg.Context, date time.Time, tl schedule.Timeline) {
	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(formatting.FormatDateWithWeekday(date), float64(leftLabelsWidth), float64(headerHeight)/2-8, 0, 0.5)

	loadFont(dc, footerFontSize, FontStyleDefault)
	dc.DrawStringAnchored(
		fmt.Sprintf("%d %s", tl.Total(), formatting.PluralizeAppointments(tl.Total())),
		float64(leftLabelsWidth), float64(headerHeight)/2+20, 0, 0.5,
	)
}

// minuteY координата Y для минуты дня
func minuteY(c schedule.Clock) float64 {
	offset := float64(int(c) - schedule.TimelineFirstHour*60)
	return float64(headerHeight) + offset/float64(schedule.SlotWidthMinutes)*slotRowHeight
}

// drawSlotRows рисует фон слотов, линии и подписи времени
func drawSlotRows(dc *gg.Context) {
	for i, start := range schedule.SlotStarts() {
		y := minuteY(start)
		if i%2 == 0 {
			dc.SetColor(evenRowColor)
		} else {
			dc.SetColor(oddRowColor)
		}
		dc.DrawRectangle(timelineAreaLeft, y, timelineAreaW, slotRowHeight)
		dc.Fill()

		if start.Minute() == 0 {
			dc.SetColor(hourLineColor)
			dc.SetLineWidth(0.6)
		} else {
			dc.SetColor(halfHourColor)
			dc.SetLineWidth(0.3)
		}
		dc.DrawLine(timelineAreaLeft, y, timelineAreaLeft+timelineAreaW, y)
		dc.Stroke()

		loadFont(dc, hourLabelFontSize, FontStyleDefault)
		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(start.String(), float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawBlocks рисует записи прямоугольниками во всю длительность.
// Возвращает число записей, не поместившихся в maxLanes дорожек.
func drawBlocks(dc *gg.Context, blocks []placedBlock, lanes int) int {
	if lanes > maxLanes {
		lanes = maxLanes
	}
	laneWidth := float64(timelineAreaW) / float64(lanes)
	windowEnd := schedule.Clock((schedule.TimelineLastHour + 1) * 60)

	hidden := 0
	for _, blk := range blocks {
		if blk.lane >= maxLanes {
			hidden++
			continue
		}

		end := blk.end
		if end > windowEnd {
			end = windowEnd
		}

		x := float64(timelineAreaLeft) + float64(blk.lane)*laneWidth + blockPaddingX
		y := minuteY(blk.start) + 2
		w := laneWidth - blockPaddingX*2
		h := minuteY(end) - minuteY(blk.start) - 4
		if h < minBlockHeight {
			h = minBlockHeight
		}

		fill := statusColor(blk.record.Status)

		// Тень
		dc.SetColor(blockShadowClr)
		dc.DrawRoundedRectangle(x+shadowOffset, y+shadowOffset, w, h, blockBorderRad)
		dc.Fill()

		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x, y, w, h, blockBorderRad)
		dc.Fill()

		// Рамка
		dc.SetColor(darkenColor(fill, 0.8))
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(x, y, w, h, blockBorderRad)
		dc.Stroke()

		loadFont(dc, blockFontSize, FontStyleBold)
		dc.SetColor(blockTextColor)
		maxChars := int(w / 9)
		if maxChars < 0 {
			maxChars = 0
		}
		title := formatting.Truncate(fmt.Sprintf("%s–%s %s", blk.record.StartTime, blk.record.EndTime, blk.record.Type), maxChars)
		dc.DrawStringAnchored(title, x+8, y+blockFontSize+2, 0, 0)

		if h > 2*blockFontSize+8 {
			loadFont(dc, blockFontSize-1, FontStyleDefault)
			sub := formatting.Truncate(blk.record.StudentName+" · "+blk.record.InstructorName, maxChars)
			dc.DrawStringAnchored(sub, x+8, y+2*blockFontSize+6, 0, 0)
		}
	}
	return hidden
}

// statusColor возвращает цвет блока по статусу записи
func statusColor(status model.AppointmentStatus) color.RGBA {
	switch status {
	case model.StatusScheduled:
		return scheduledColor
	case model.StatusConfirmed:
		return confirmedColor
	case model.StatusCompleted:
		return completedColor
	case model.StatusCanceled:
		return canceledColor
	case model.StatusNoShow:
		return noShowColor
	default:
		return unknownColor
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawCurrentTimeLine рисует красную линию текущего времени
func drawCurrentTimeLine(dc *gg.Context, now time.Time) {
	current := schedule.Clock(now.Hour()*60 + now.Minute())
	if !schedule.InWindow(current) {
		return
	}

	y := minuteY(current)
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(timelineAreaLeft, y, timelineAreaLeft+timelineAreaW, y)
	dc.Stroke()
}

// drawLegend рисует легенду статусов справа
func drawLegend(dc *gg.Context) {
	liX := float64(timelineAreaLeft+timelineAreaW) + 20
	liY := float64(headerHeight) + 10
	boxW, boxH := 20.0, 14.0

	for _, status := range model.AppointmentStatuses {
		dc.SetColor(statusColor(status))
		dc.DrawRoundedRectangle(liX, liY, boxW, boxH, 3)
		dc.Fill()

		loadFont(dc, legendItemFontSize, FontStyleDefault)
		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(string(status), liX+boxW+8, liY+boxH/2+1, 0, 0.35)
		liY += boxH + 14
	}
}

// drawFooter пишет сколько записей не попало на сетку
func drawFooter(dc *gg.Context, tl schedule.Timeline, hidden int) {
	var parts []string
	if hidden > 0 {
		parts = append(parts, fmt.Sprintf("+%d sobrepostos", hidden))
	}
	if len(tl.OutOfWindow) > 0 {
		parts = append(parts, fmt.Sprintf("+ %d fora do horário 07:00–21:00", len(tl.OutOfWindow)))
	}
	if len(parts) == 0 {
		return
	}
	loadFont(dc, footerFontSize, FontStyleDefault)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(
		strings.Join(parts, " · "),
		float64(leftLabelsWidth), float64(imageHeight-footerHeight/2), 0, 0.5,
	)
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
