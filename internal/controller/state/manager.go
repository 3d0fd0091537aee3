package state

import (
	"sync"
	"time"
)

// Manager управляет состояниями чатов
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // chatID -> UserData
	now    func() time.Time
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
		now:    time.Now,
	}
}

func (sm *Manager) get(chatID int64) *UserData {
	data, exists := sm.states[chatID]
	if !exists {
		data = &UserData{View: DefaultView(sm.now())}
		sm.states[chatID] = data
	}
	return data
}

// GetState получает текущее состояние диалога
func (sm *Manager) GetState(chatID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if data, exists := sm.states[chatID]; exists {
		return data.State
	}
	return StateNone
}

// SetState устанавливает состояние диалога
func (sm *Manager) SetState(chatID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.get(chatID).State = state
}

// View возвращает копию состояния просмотра
func (sm *Manager) View(chatID int64) ViewState {
	sm.mu.RLock()
	if data, exists := sm.states[chatID]; exists {
		view := data.View
		sm.mu.RUnlock()
		return view
	}
	sm.mu.RUnlock()

	return DefaultView(sm.now())
}

// UpdateView изменяет состояние просмотра под блокировкой и возвращает результат
func (sm *Manager) UpdateView(chatID int64, fn func(*ViewState)) ViewState {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	data := sm.get(chatID)
	fn(&data.View)
	return data.View
}

// ClearState сбрасывает диалог и просмотр чата
func (sm *Manager) ClearState(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, chatID)
}
