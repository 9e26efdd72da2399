package xmppext

import (
	"context"
	"strings"

	"github.com/looplab/fsm"
)

// Состояния конечного автомата сканирования элемента.
// start    - курсор стоит на открывающем теге целевого элемента;
// scanning - потребляются события start/text/end с отслеживанием
//            текущего тега;
// done     - достигнут закрывающий тег целевого элемента;
// failed   - ошибка уровня потока, экземпляр не будет произведен.
const (
	ScanStateStart    = "start"
	ScanStateScanning = "scanning"
	ScanStateDone     = "done"
	ScanStateFailed   = "failed"
)

const (
	scanEventBegin    = "begin"
	scanEventComplete = "complete"
	scanEventFail     = "fail"
)

// newScanFSM оборачивает looplab/fsm для состояния сканирования.
// События: begin, complete, fail.
func newScanFSM() *fsm.FSM {
	return fsm.NewFSM(
		ScanStateStart,
		fsm.Events{
			{Name: scanEventBegin, Src: []string{ScanStateStart}, Dst: ScanStateScanning},
			{Name: scanEventComplete, Src: []string{ScanStateScanning}, Dst: ScanStateDone},
			{Name: scanEventFail, Src: []string{ScanStateStart, ScanStateScanning}, Dst: ScanStateFailed},
		}, nil,
	)
}

// ScanText потребляет содержимое элемента outer, направляя каждый
// текстовый фрагмент в handle вместе с именем текущего тега.
//
// Курсор должен стоять на открывающем теге outer. Неизвестные теги не
// являются ошибкой: решение об использовании значения принимает handle.
// Повторное появление тега перезаписывает значение (last value wins).
// Текущий тег отслеживается по открывающим тегам; текст, следующий за
// закрывающим тегом дочернего элемента, к этому элементу не относится.
// Завершение отслеживается по глубине вложенности: вложенный элемент,
// совпадающий по имени с outer, не завершает цикл преждевременно.
//
// Ошибка уровня потока переводит автомат в failed и возвращается
// вызывающему провайдеру, который поглощает ее как "экземпляр не
// произведен".
func (p *Parser) ScanText(outer string, handle func(tag, text string)) error {
	machine := newScanFSM()
	ctx := context.Background()
	if err := machine.Event(ctx, scanEventBegin); err != nil {
		return WrapExtError(ErrorCodeStreamFault, outer, "автомат сканирования не запустился", err)
	}

	// Глубина считает открытые элементы, включая сам outer.
	depth := 1
	currentTag := outer
	for machine.Current() == ScanStateScanning {
		if err := p.Advance(); err != nil {
			_ = machine.Event(ctx, scanEventFail)
			return WrapExtError(ErrorCodeUnexpectedEOF, outer, "поток закончился до закрывающего тега", err)
		}
		switch p.kind {
		case EventStartElement:
			depth++
			currentTag = p.name
		case EventText:
			if text := strings.TrimSpace(p.text); text != "" {
				handle(currentTag, text)
			}
		case EventEndElement:
			if p.name == outer && depth == 1 {
				_ = machine.Event(ctx, scanEventComplete)
				continue
			}
			depth--
			// Текущий тег отслеживается только по открывающим тегам:
			// текст после закрывающего тега не принадлежит закрытому
			// элементу и приходит в handle с пустым тегом.
			currentTag = ""
		}
	}
	return nil
}
